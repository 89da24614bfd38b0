package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"cmdboard/internal/config"
	"cmdboard/internal/ui/input/modes"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	titleStyle   lipgloss.Style
	sectionStyle lipgloss.Style
	keyStyle     lipgloss.Style
	descStyle    lipgloss.Style
	noteStyle    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		sectionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		noteStyle: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// RenderHelpContent generates the help page shown in the pager
func (r *HelpRenderer) RenderHelpContent(keys modes.KeyMap, cfg *config.Config, configPath string) string {
	var help strings.Builder

	help.WriteString(r.titleStyle.Render("cmdboard Help"))
	help.WriteString("\n")

	r.section(&help, "Dashboard", keys.Palette, keys.Up, keys.Down, keys.Activate, keys.OpenLink, keys.Reload, keys.Help, keys.Quit)
	r.section(&help, "Command Palette", keys.Up, keys.Down, keys.Activate, keys.Escape, keys.Back)
	help.WriteString(r.noteStyle.Render("  Type to filter. Commands open a sub-page; everything else opens in the browser."))
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Configuration"))
	help.WriteString("\n")
	r.entry(&help, "file", configPath)
	user := cfg.User
	if user == "" {
		user = "(none, palette disabled)"
	}
	r.entry(&help, "user", user)
	r.entry(&help, "case", cfg.Palette.Case)
	r.entry(&help, "wrap", fmt.Sprintf("%t", !cfg.Palette.DisableWrap))
	r.entry(&help, "fetch timeout", cfg.FetchTimeout().String())
	if cfg.Catalog.File != "" {
		r.entry(&help, "catalog file", cfg.Catalog.File)
	}
	if cfg.Catalog.URL != "" {
		r.entry(&help, "catalog url", cfg.Catalog.URL)
	}
	help.WriteString(r.noteStyle.Render(fmt.Sprintf("  Any setting can be overridden with %s_* variables, e.g. %s_USER", config.EnvPrefix, config.EnvPrefix)))

	return help.String()
}

func (r *HelpRenderer) section(b *strings.Builder, title string, bindings ...key.Binding) {
	b.WriteString(r.sectionStyle.Render(title))
	b.WriteString("\n")
	for _, binding := range bindings {
		h := binding.Help()
		if h.Key == "" {
			continue
		}
		r.entry(b, h.Key, h.Desc)
	}
	b.WriteString("\n")
}

func (r *HelpRenderer) entry(b *strings.Builder, k, desc string) {
	fmt.Fprintf(b, "  %s  %s\n", r.keyStyle.Render(fmt.Sprintf("%-14s", k)), r.descStyle.Render(desc))
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// SetProgram sets the program reference
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't write on exit, it would mess with our screen
	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}
