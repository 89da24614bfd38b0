package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"cmdboard/internal/ui/input/modes"
)

// StatusKind colors the status line
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	User          string
	Hotkey        string
	Links         []LinkRow
	Commands      []LinkRow
	SelectedLink  int
	StatusMessage string
	StatusKind    StatusKind
	Palette       *PaletteState // nil while the palette is closed
	HelpModel     help.Model
	Keys          modes.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	dashboard     *DashboardRenderer
	paletteRender *PaletteRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		dashboard:     NewDashboardRenderer(styles),
		paletteRender: NewPaletteRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	innerWidth := termWidth - 4 // Account for main container padding

	content := &strings.Builder{}
	content.WriteString(r.renderTitle(state, innerWidth))
	content.WriteString("\n")
	content.WriteString(r.dashboard.RenderLinks(state.Links, state.SelectedLink, innerWidth))
	content.WriteString("\n")
	if cmds := r.dashboard.RenderCommands(state.Commands, state.Hotkey, innerWidth); cmds != "" {
		content.WriteString(cmds)
		content.WriteString("\n")
	}

	footer := r.renderFooter(state)

	// Push the footer to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	if padding := availableLines - currentLines - lipgloss.Height(footer); padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.Palette != nil {
		popup := r.paletteRender.Render(*state.Palette, state.HelpModel, termWidth, state.Height)
		return r.popupRender.RenderPopupOverlay(finalContent, popup, state.Height, state.Width)
	}
	return finalContent
}

func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("cmdboard")
	user := r.styles.Dim.Render("not signed in: set user in config")
	if state.User != "" {
		user = r.styles.Dim.Render("signed in as ") + r.styles.Highlight.Render(state.User)
	}
	return justify(logo, user, width)
}

func (r *Renderer) renderFooter(state ViewState) string {
	lines := []string{}
	if state.StatusMessage != "" {
		style := r.styles.Status
		switch state.StatusKind {
		case StatusError:
			style = r.styles.StatusError
		case StatusSuccess:
			style = r.styles.StatusSuccess
		}
		lines = append(lines, style.Render(state.StatusMessage))
	}
	lines = append(lines, state.HelpModel.View(state.Keys))
	return strings.Join(lines, "\n")
}
