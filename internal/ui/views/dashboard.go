package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// LinkRow is one dashboard entry
type LinkRow struct {
	Name   string
	Detail string
}

// DashboardRenderer renders the links and commands behind the palette
type DashboardRenderer struct {
	styles *Styles
}

// NewDashboardRenderer creates a new dashboard renderer
func NewDashboardRenderer(styles *Styles) *DashboardRenderer {
	return &DashboardRenderer{styles: styles}
}

// RenderLinks renders the numbered, selectable links
func (dr *DashboardRenderer) RenderLinks(links []LinkRow, selected, width int) string {
	var lines []string
	lines = append(lines, dr.styles.Section.Render("Links"))
	if len(links) == 0 {
		lines = append(lines, dr.styles.Dim.Render("  No links configured."))
		return strings.Join(lines, "\n")
	}
	for i, l := range links {
		index := "  "
		if i < 9 {
			index = fmt.Sprintf("%d ", i+1)
		}
		line := fmt.Sprintf("%s %s", dr.styles.Index.Render(index), l.Name)
		if l.Detail != "" {
			line += "  " + dr.styles.Dim.Render(l.Detail)
		}
		line = ansi.Truncate(line, width, ellipsis)
		if i == selected {
			line = dr.styles.SelectionBg.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderCommands lists the palette commands for discoverability
func (dr *DashboardRenderer) RenderCommands(commands []LinkRow, hotkey string, width int) string {
	if len(commands) == 0 {
		return ""
	}
	lines := []string{dr.styles.Section.Render("Commands")}
	for _, c := range commands {
		line := "   " + c.Name
		if c.Detail != "" {
			line += "  " + dr.styles.Dim.Render(c.Detail)
		}
		lines = append(lines, ansi.Truncate(line, width, ellipsis))
	}
	lines = append(lines, dr.styles.Dim.Render(fmt.Sprintf("   run them from the palette (%s)", hotkey)))
	return strings.Join(lines, "\n")
}
