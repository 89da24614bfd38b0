package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cmdboard/internal/ui/input/types"
)

type DashboardMode struct {
	keys KeyMap
}

func NewDashboardMode(keys KeyMap) *DashboardMode {
	return &DashboardMode{keys: keys}
}

func (m *DashboardMode) Name() string {
	return "dashboard"
}

func (m *DashboardMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DashboardMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DashboardMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case msg.String() == "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case msg.String() == "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case msg.String() == "g", msg.String() == "home":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case msg.String() == "G", msg.String() == "end":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Activate):
		if ctx.LinkCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ActivateAction{}}, true

	case key.Matches(msg, m.keys.OpenLink):
		index := int(msg.String()[0] - '1')
		if index >= ctx.LinkCount() {
			return nil, true // Consume the key even if no action
		}
		return []types.Action{types.OpenLinkAction{Index: index}}, true

	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadConfigAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
