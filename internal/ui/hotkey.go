package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HotkeySubscription is the global palette shortcut. The host subscribes a handler
// while a user is signed in and unsubscribes it on teardown; key presses only reach
// the handler while subscribed.
type HotkeySubscription struct {
	binding key.Binding
	handler func() tea.Cmd
}

// NewHotkeySubscription creates an inactive subscription for binding
func NewHotkeySubscription(binding key.Binding) *HotkeySubscription {
	return &HotkeySubscription{binding: binding}
}

// Subscribe installs handler, replacing any previous one
func (h *HotkeySubscription) Subscribe(handler func() tea.Cmd) {
	h.handler = handler
	log.Printf("Hotkey %v subscribed", h.binding.Keys())
}

// Unsubscribe removes the handler. It is safe to call more than once.
func (h *HotkeySubscription) Unsubscribe() {
	if h.handler == nil {
		return
	}
	h.handler = nil
	log.Printf("Hotkey %v unsubscribed", h.binding.Keys())
}

// Active reports whether a handler is installed
func (h *HotkeySubscription) Active() bool {
	return h.handler != nil
}

// Rebind changes the key, keeping the current handler
func (h *HotkeySubscription) Rebind(binding key.Binding) {
	h.binding = binding
}

// Handle runs the handler when msg matches the hotkey. The bool reports whether
// the key was consumed.
func (h *HotkeySubscription) Handle(msg tea.KeyMsg) (tea.Cmd, bool) {
	if h.handler == nil || !key.Matches(msg, h.binding) {
		return nil, false
	}
	return h.handler(), true
}
