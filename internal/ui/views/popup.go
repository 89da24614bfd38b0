package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers popup over a dimmed copy of mainContent. The popup sits
// in the upper third, where command palettes usually open.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popup string, height, width int) string {
	if width <= 0 || height <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, mainContent, popup)
	}

	popupW := lipgloss.Width(popup)
	popupH := lipgloss.Height(popup)
	if popupW > width {
		popupW = width
	}
	if popupH > height {
		popupH = height
	}
	x := (width - popupW) / 2
	y := (height - popupH) / 3

	base := pr.backdrop(mainContent, width, height)
	popupLines := strings.Split(popup, "\n")
	for i := 0; i < popupH; i++ {
		row := y + i
		left := ansi.Truncate(base[row], x, "")
		right := ansi.TruncateLeft(base[row], x+popupW, "")
		line := ansi.Truncate(popupLines[i], popupW, "")
		if pad := popupW - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		base[row] = left + line + right
	}
	return strings.Join(base, "\n")
}

// backdrop strips styles from content, recolors it dim and pads it to the screen size
func (pr *PopupRenderer) backdrop(content string, width, height int) []string {
	lines := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		plain := ""
		if i < len(lines) {
			plain = ansi.Truncate(ansi.Strip(lines[i]), width, "")
		}
		if pad := width - lipgloss.Width(plain); pad > 0 {
			plain += strings.Repeat(" ", pad)
		}
		out[i] = pr.styles.Backdrop.Render(plain)
	}
	return out
}
