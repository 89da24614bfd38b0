package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"cmdboard/internal/domain"
	"cmdboard/internal/ui/palette"
)

const (
	ellipsis        = "…"
	paletteMaxWidth = 72
	paletteMinWidth = 30
	footerAction    = "Open Application ↵"
)

// PaletteState is what the palette overlay needs to render
type PaletteState struct {
	Input    string // rendered text input
	Pages    []domain.Page
	Groups   []domain.Group
	Selected string // name of the highlighted item
	Loading  bool
	Hint     string // "did you mean" candidate
	Bindings []key.Binding
}

// PaletteRenderer renders the command palette box
type PaletteRenderer struct {
	styles *Styles
}

// NewPaletteRenderer creates a new palette renderer
func NewPaletteRenderer(styles *Styles) *PaletteRenderer {
	return &PaletteRenderer{styles: styles}
}

// Width returns the palette content width for a screen width
func (pr *PaletteRenderer) Width(screenWidth int) int {
	w := screenWidth - 8
	if w > paletteMaxWidth {
		w = paletteMaxWidth
	}
	if w < paletteMinWidth {
		w = paletteMinWidth
	}
	return w
}

// Render renders the palette for a screen of the given size
func (pr *PaletteRenderer) Render(state PaletteState, helpModel help.Model, screenWidth, screenHeight int) string {
	width := pr.Width(screenWidth)
	var b strings.Builder

	if crumb := pr.breadcrumb(state.Pages); crumb != "" {
		b.WriteString(pr.styles.Breadcrumb.Render(ansi.Truncate(crumb, width, ellipsis)))
		b.WriteString("\n")
	}
	b.WriteString(pr.styles.Prompt.Render("› ") + state.Input)
	b.WriteString("\n")
	b.WriteString(pr.styles.Dim.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	maxRows := screenHeight/2 - 4
	if maxRows < 5 {
		maxRows = 5
	}
	b.WriteString(pr.renderBody(state, width, maxRows))
	b.WriteString("\n")
	b.WriteString(pr.styles.Dim.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(pr.renderFooter(state, helpModel, width))

	return pr.styles.PaletteBox.Width(width + 2).Render(b.String())
}

func (pr *PaletteRenderer) breadcrumb(pages []domain.Page) string {
	if len(pages) == 0 {
		return ""
	}
	parts := []string{"Home"}
	for _, p := range pages {
		parts = append(parts, string(p))
	}
	return strings.Join(parts, " › ")
}

// renderBody lists the groups, scrolled so the highlighted item stays visible
func (pr *PaletteRenderer) renderBody(state PaletteState, width, maxRows int) string {
	if len(state.Groups) == 0 {
		if state.Loading {
			return pr.styles.Empty.Render("Loading…")
		}
		lines := []string{pr.styles.Empty.Render("No results found.")}
		if state.Hint != "" {
			lines = append(lines, pr.styles.Hint.Render(fmt.Sprintf("Did you mean %q?", state.Hint)))
		}
		return strings.Join(lines, "\n")
	}

	var lines []string
	selectedLine := 0
	for gi, g := range state.Groups {
		if gi > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, pr.styles.Heading.Render(g.Heading))
		for _, item := range g.Items {
			selected := item.Name() == state.Selected
			if selected {
				selectedLine = len(lines)
			}
			lines = append(lines, pr.renderItem(item, selected, width))
		}
		if g.Heading == palette.HeadingSuggestions && state.Loading {
			lines = append(lines, pr.styles.Empty.Render("  Loading…"))
		}
	}

	if len(lines) <= maxRows {
		return strings.Join(lines, "\n")
	}

	offset := 0
	if selectedLine >= maxRows-1 {
		offset = selectedLine - maxRows + 2
	}
	if offset > len(lines)-maxRows {
		offset = len(lines) - maxRows
	}
	window := append([]string{}, lines[offset:offset+maxRows]...)
	if offset > 0 {
		window[0] = pr.styles.Scroll.Render(fmt.Sprintf("↑ %d more above", offset))
	}
	if below := len(lines) - offset - maxRows; below > 0 {
		window[len(window)-1] = pr.styles.Scroll.Render(fmt.Sprintf("↓ %d more below", below))
	}
	return strings.Join(window, "\n")
}

func (pr *PaletteRenderer) renderItem(item domain.Item, selected bool, width int) string {
	marker := lipgloss.NewStyle().Foreground(lipgloss.Color(KindColor(item.Kind()))).Render("●")
	detail := item.Detail()

	nameStyle := pr.styles.Item
	prefix := "  "
	if selected {
		nameStyle = pr.styles.ItemSelected
		prefix = pr.styles.Highlight.Render("▌") + " "
	}

	detailWidth := 0
	if detail != "" {
		detail = ansi.Truncate(detail, width/3, ellipsis)
		detailWidth = lipgloss.Width(detail) + 2
	}
	nameWidth := width - 4 - detailWidth
	if nameWidth < 1 {
		nameWidth = 1
	}
	name := nameStyle.Render(ansi.Truncate(item.Name(), nameWidth, ellipsis))

	line := prefix + marker + " " + name
	if detail == "" {
		return line
	}
	return justify(line, pr.styles.Detail.Render(detail), width)
}

func (pr *PaletteRenderer) renderFooter(state PaletteState, helpModel help.Model, width int) string {
	action := ""
	if state.Selected != "" {
		action = pr.styles.Footer.Bold(true).Render(footerAction)
	}
	keys := ""
	if len(state.Bindings) > 0 {
		keys = helpModel.ShortHelpView(state.Bindings)
	}
	if lipgloss.Width(keys)+lipgloss.Width(action)+1 > width {
		keys = ""
	}
	return justify(keys, action, width)
}

// justify places right at the end of a width-wide line
func justify(left, right string, width int) string {
	if right == "" {
		return left
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
