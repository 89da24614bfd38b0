package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Palette actions
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

type EscapeAction struct{}

func (a EscapeAction) Type() string { return "escape" }

// BackAction pops a palette page; emitted for backspace on an empty query
type BackAction struct{}

func (a BackAction) Type() string { return "back" }

type ClosePaletteAction struct{}

func (a ClosePaletteAction) Type() string { return "close_palette" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for the palette input
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Dashboard actions
type OpenLinkAction struct {
	Index int // zero-based position on the dashboard
}

func (a OpenLinkAction) Type() string { return "open_link" }

type ReloadConfigAction struct{}

func (a ReloadConfigAction) Type() string { return "reload_config" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
