package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"cmdboard/internal/ui/input/types"
)

type fakeContext struct {
	open  bool
	query string
	items int
	links int
}

func (f *fakeContext) PaletteOpen() bool { return f.open }
func (f *fakeContext) Query() string     { return f.query }
func (f *fakeContext) ItemCount() int    { return f.items }
func (f *fakeContext) LinkCount() int    { return f.links }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDashboardKeys(t *testing.T) {
	h := New("ctrl+k", "Search")
	ctx := &fakeContext{links: 2}

	actions, _ := h.HandleKey(runes("q"), ctx)
	require.Equal(t, []types.Action{types.QuitAction{Force: false}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ctx)
	require.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)

	actions, _ = h.HandleKey(runes("2"), ctx)
	require.Equal(t, []types.Action{types.OpenLinkAction{Index: 1}}, actions)

	actions, _ = h.HandleKey(runes("3"), ctx)
	require.Empty(t, actions, "no third link")

	actions, _ = h.HandleKey(runes("j"), ctx)
	require.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)

	actions, _ = h.HandleKey(runes("?"), ctx)
	require.Equal(t, []types.Action{types.ToggleHelpAction{}}, actions)

	actions, _ = h.HandleKey(runes("x"), ctx)
	require.Empty(t, actions)
	require.Nil(t, h.TextInput(), "no text input outside the palette")
}

func TestPaletteTypingUpdatesText(t *testing.T) {
	h := New("ctrl+k", "Search")
	ctx := &fakeContext{open: true}
	h.ChangeMode(types.ModePalette, "", ctx)
	require.Equal(t, types.ModePalette, h.CurrentMode())

	var last []types.Action
	for _, r := range "git" {
		last, _ = h.HandleKey(runes(string(r)), ctx)
	}
	require.Equal(t, []types.Action{types.UpdateTextAction{Text: "git"}}, last)

	// "q" is text in the palette, not quit
	actions, _ := h.HandleKey(runes("q"), ctx)
	require.Equal(t, []types.Action{types.UpdateTextAction{Text: "gitq"}}, actions)
}

func TestPaletteBackspace(t *testing.T) {
	h := New("ctrl+k", "Search")
	ctx := &fakeContext{open: true}
	h.ChangeMode(types.ModePalette, "a", ctx)

	ctx.query = "a"
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, ctx)
	require.Equal(t, []types.Action{types.UpdateTextAction{Text: ""}}, actions)

	ctx.query = ""
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, ctx)
	require.Equal(t, []types.Action{types.BackAction{}}, actions)
}

func TestPaletteNavigationKeys(t *testing.T) {
	h := New("ctrl+k", "Search")
	ctx := &fakeContext{open: true, items: 3}
	h.ChangeMode(types.ModePalette, "", ctx)

	cases := []struct {
		msg  tea.KeyMsg
		want types.Action
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, types.NavigateAction{Direction: "down"}},
		{tea.KeyMsg{Type: tea.KeyTab}, types.NavigateAction{Direction: "down"}},
		{tea.KeyMsg{Type: tea.KeyUp}, types.NavigateAction{Direction: "up"}},
		{tea.KeyMsg{Type: tea.KeyCtrlP}, types.NavigateAction{Direction: "up"}},
		{tea.KeyMsg{Type: tea.KeyEnter}, types.ActivateAction{}},
		{tea.KeyMsg{Type: tea.KeyEsc}, types.EscapeAction{}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}
	for _, tc := range cases {
		actions, _ := h.HandleKey(tc.msg, ctx)
		require.Equal(t, []types.Action{tc.want}, actions, tc.msg.String())
	}
}

func TestSyncTextAndModeSwitch(t *testing.T) {
	h := New("ctrl+k", "Search")
	ctx := &fakeContext{open: true}
	h.ChangeMode(types.ModePalette, "create", ctx)
	require.Equal(t, "create", h.TextInput().Value())

	h.SyncText("")
	require.Equal(t, "", h.TextInput().Value())

	h.ChangeMode(types.ModeDashboard, "", ctx)
	require.Nil(t, h.TextInput())
	require.Equal(t, types.ModeDashboard, h.CurrentMode())
}

func TestKeyMapHelp(t *testing.T) {
	keys := New("ctrl+k", "Search").Keys()
	require.Equal(t, "ctrl+k", keys.Palette.Help().Key)
	require.Len(t, keys.FullHelp(), 2)
	require.NotEmpty(t, keys.ShortHelp())
}
