package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cmdboard/internal/ui/input/types"
)

// PaletteMode edits the query and drives the palette cursor
type PaletteMode struct {
	TextInputMode
}

func NewPaletteMode(ti *textinput.Model, keys KeyMap) *PaletteMode {
	return &PaletteMode{
		TextInputMode: NewTextInputMode(types.ModePalette, "palette", ti, keys),
	}
}

func (m *PaletteMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.Back):
		// backspace edits a non-empty query
		if ctx.Query() == "" {
			return []types.Action{types.BackAction{}}, true
		}
		return nil, false
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
