package views

import (
	"github.com/charmbracelet/lipgloss"

	"cmdboard/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Section       lipgloss.Style
	Index         lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style

	// Palette
	PaletteBox   lipgloss.Style
	Prompt       lipgloss.Style
	Breadcrumb   lipgloss.Style
	Heading      lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Detail       lipgloss.Style
	Empty        lipgloss.Style
	Hint         lipgloss.Style
	Footer       lipgloss.Style
	Backdrop     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Index:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green

		PaletteBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Prompt:       lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Breadcrumb:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Heading:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		Item:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("238")).Bold(true),
		Detail:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Empty:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Hint:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Footer:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Backdrop:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// KindColor returns the marker color of an item kind
func KindColor(kind domain.Kind) string {
	switch kind {
	case domain.KindCommand:
		return "33" // blue
	case domain.KindRepoAction:
		return "78" // green
	case domain.KindTeamMember:
		return "213" // pink
	default:
		return "214" // yellow for links
	}
}
