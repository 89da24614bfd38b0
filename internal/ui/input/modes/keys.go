package modes

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of both modes and doubles as the help.KeyMap of the footer
type KeyMap struct {
	Palette   key.Binding
	Up        key.Binding
	Down      key.Binding
	Activate  key.Binding
	Escape    key.Binding
	Back      key.Binding
	OpenLink  key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// NewKeyMap builds the bindings; hotkey toggles the palette
func NewKeyMap(hotkey string) KeyMap {
	return KeyMap{
		Palette: key.NewBinding(
			key.WithKeys(hotkey),
			key.WithHelp(hotkey, "command palette"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p", "shift+tab"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "tab"),
			key.WithHelp("↓", "next"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back/close"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "back (empty query)"),
		),
		OpenLink: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "open link"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload config"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp is shown in the dashboard footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Palette, k.OpenLink, k.Help, k.Quit}
}

// FullHelp lists every binding, palette keys first
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Palette, k.Up, k.Down, k.Activate, k.Escape, k.Back},
		{k.OpenLink, k.Reload, k.Help, k.Quit},
	}
}

// PaletteHelp is shown in the palette footer
func (k KeyMap) PaletteHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Escape}
}
