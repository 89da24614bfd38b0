package commands

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cmdboard/internal/config"
	"cmdboard/internal/provider"
)

var errNoConfigService = errors.New("no config file to reload")

const defaultStatusTimeout = 3 * time.Second

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(p provider.Provider, service config.ConfigService, fetchTimeout time.Duration) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Provider:      p,
			ConfigService: service,
			FetchTimeout:  fetchTimeout,
			StatusTimeout: defaultStatusTimeout,
		},
	}
}

// SetProvider swaps the provider used by later fetches
func (e *Executor) SetProvider(p provider.Provider, fetchTimeout time.Duration) {
	e.ctx.Provider = p
	e.ctx.FetchTimeout = fetchTimeout
}

// SetStatusTimeout changes how long status messages stay visible
func (e *Executor) SetStatusTimeout(d time.Duration) {
	e.ctx.StatusTimeout = d
}

// ExecuteFetch creates and executes the mount-time fetch
func (e *Executor) ExecuteFetch(mountID string) tea.Cmd {
	cmd := NewFetchItemsCommand(e.ctx, mountID)
	return cmd.Execute()
}

// ExecuteReload creates and executes a config reload
func (e *Executor) ExecuteReload() tea.Cmd {
	cmd := NewReloadConfigCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteClearStatus creates and executes a delayed status clear
func (e *Executor) ExecuteClearStatus(seq int) tea.Cmd {
	cmd := NewClearStatusCommand(e.ctx, seq)
	return cmd.Execute()
}
