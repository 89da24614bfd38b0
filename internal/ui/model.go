package ui

import (
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cmdboard/internal/config"
	"cmdboard/internal/domain"
	"cmdboard/internal/eventbus"
	"cmdboard/internal/opener"
	"cmdboard/internal/provider"
	"cmdboard/internal/ui/commands"
	"cmdboard/internal/ui/input"
	inputtypes "cmdboard/internal/ui/input/types"
	"cmdboard/internal/ui/logic"
	"cmdboard/internal/ui/palette"
	"cmdboard/internal/ui/viewmodels"
	"cmdboard/internal/ui/views"
)

// Options overrides the collaborators NewModel would otherwise build from config
type Options struct {
	ConfigService config.ConfigService
	Provider      provider.Provider
	Opener        opener.Opener
	NewID         func() string // palette mount ids
}

// Model represents the UI state
type Model struct {
	bus           eventbus.EventBus
	config        *config.Config
	configService config.ConfigService
	opts          Options

	palette *palette.Controller
	hotkey  *HotkeySubscription
	opener  opener.Opener

	// UI-specific state
	width        int
	height       int
	help         help.Model
	selectedLink int
	statusSeq    int
	inPagerMode  bool // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer       // view renderer
	viewModel    *viewmodels.ViewModel // view model for rendering
	cmdExecutor  *commands.Executor    // command executor
	inputHandler *input.Handler        // input handling
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts Options) *Model {
	m := &Model{
		bus:           bus,
		config:        cfg,
		configService: opts.ConfigService,
		opts:          opts,
		help:          help.New(),
		renderer:      views.NewRenderer(),
		helpRenderer:  NewHelpRenderer(),
		helpOps:       NewHelpOps(nil),
	}

	m.cmdExecutor = commands.NewExecutor(m.providerFor(cfg), opts.ConfigService, cfg.FetchTimeout())
	m.opener = m.openerFor(cfg)
	m.inputHandler = input.New(cfg.Palette.Hotkey, cfg.Palette.Placeholder)
	m.palette = m.newController(cfg)
	m.hotkey = NewHotkeySubscription(m.inputHandler.Keys().Palette)

	// Create view model with a placeholder text input (actual one is in input handler)
	m.viewModel = viewmodels.NewViewModel(cfg, m.palette, textinput.New())
	m.viewModel.SetHelp(m.help, m.inputHandler.Keys())

	m.syncHotkey()
	return m
}

func (m *Model) providerFor(cfg *config.Config) provider.Provider {
	if m.opts.Provider != nil {
		return m.opts.Provider
	}
	return provider.FromConfig(cfg)
}

func (m *Model) openerFor(cfg *config.Config) opener.Opener {
	if m.opts.Opener != nil {
		return m.opts.Opener
	}
	return opener.NewBrowser(cfg.Browser.Command)
}

func (m *Model) newController(cfg *config.Config) *palette.Controller {
	return palette.NewController(palette.Options{
		Catalog: palette.CatalogFromConfig(cfg),
		Match:   logic.MatchOptions{Case: logic.ParseCaseMode(cfg.Palette.Case)},
		Wrap:    !cfg.Palette.DisableWrap,
		Opener:  m.opener,
		OnClose: m.onPaletteClosed,
		Bus:     m.bus,
		NewID:   m.opts.NewID,
	})
}

// syncHotkey subscribes the palette hotkey while a user is signed in
func (m *Model) syncHotkey() {
	if m.session().Valid() {
		m.hotkey.Subscribe(m.togglePalette)
		return
	}
	m.hotkey.Unsubscribe()
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help, m.inputHandler.Keys())

	case tea.KeyMsg:
		// The hotkey wins over every mode, including typing in the palette
		if cmd, ok := m.hotkey.Handle(msg); ok {
			return m, cmd
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		// A page change clears the query behind the input's back
		if m.palette.IsOpen() {
			m.inputHandler.SyncText(m.palette.Query())
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetSelectedLink(m.selectedLink)
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.SetInputMode(viewmodels.InputModePalette)
		m.viewModel.UpdateTextInput(*ti)
	} else {
		m.viewModel.SetInputMode(viewmodels.InputModeDashboard)
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) session() domain.Session {
	return domain.Session{User: m.config.User}
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Palette: m.palette,
		Links:   len(m.palette.Catalog().Links),
	}
}

// togglePalette is the hotkey handler: it closes an open palette, or mounts a
// new one and starts that mount's fetch
func (m *Model) togglePalette() tea.Cmd {
	if m.palette.IsOpen() {
		m.palette.Close()
		return nil
	}

	mountID, err := m.palette.Open(m.session())
	if err != nil {
		log.Printf("Cannot open palette: %v", err)
		return m.setStatus(err.Error(), views.StatusError)
	}
	modeCmd := m.inputHandler.ChangeMode(inputtypes.ModePalette, "", m.inputContext())
	return tea.Batch(modeCmd, m.cmdExecutor.ExecuteFetch(mountID))
}

// onPaletteClosed runs on every open to closed transition
func (m *Model) onPaletteClosed() {
	m.inputHandler.ChangeMode(inputtypes.ModeDashboard, "", m.inputContext())
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if m.palette.IsOpen() {
			switch a.Direction {
			case "up":
				m.palette.MovePrevious()
			case "down":
				m.palette.MoveNext()
			}
			return nil
		}
		m.moveLink(a.Direction)

	case inputtypes.ActivateAction:
		if !m.palette.IsOpen() {
			return m.openLink(m.selectedLink)
		}
		item, _ := m.palette.Selected()
		if err := m.palette.Activate(); err != nil {
			if errors.Is(err, domain.ErrNoSelection) {
				return nil
			}
			return m.setStatus(fmt.Sprintf("Failed to open: %v", err), views.StatusError)
		}
		if _, ok := palette.Resolve(item).(palette.EffectOpenURL); ok {
			return m.setStatus("Opened "+item.Name(), views.StatusSuccess)
		}

	case inputtypes.EscapeAction:
		m.palette.Escape()

	case inputtypes.BackAction:
		m.palette.Backspace()

	case inputtypes.ClosePaletteAction:
		m.palette.Close()

	case inputtypes.UpdateTextAction:
		m.palette.SetQuery(a.Text)

	case inputtypes.OpenLinkAction:
		m.selectedLink = a.Index
		return m.openLink(a.Index)

	case inputtypes.ReloadConfigAction:
		return tea.Batch(m.setStatus("Reloading config...", views.StatusInfo), m.cmdExecutor.ExecuteReload())

	case inputtypes.ToggleHelpAction:
		content := m.helpRenderer.RenderHelpContent(m.inputHandler.Keys(), m.config, m.configPath())
		return m.fetchHelpPager(content)

	case inputtypes.QuitAction:
		return func() tea.Msg { return quitMsg{} }
	}

	return nil
}

func (m *Model) moveLink(direction string) {
	count := len(m.palette.Catalog().Links)
	if count == 0 {
		return
	}
	switch direction {
	case "up":
		if m.selectedLink > 0 {
			m.selectedLink--
		}
	case "down":
		if m.selectedLink < count-1 {
			m.selectedLink++
		}
	case "home":
		m.selectedLink = 0
	case "end":
		m.selectedLink = count - 1
	}
}

// openLink opens a dashboard link without going through the palette
func (m *Model) openLink(index int) tea.Cmd {
	links := m.palette.Catalog().Links
	if index < 0 || index >= len(links) {
		return nil
	}
	effect, ok := palette.Resolve(links[index]).(palette.EffectOpenURL)
	if !ok {
		return nil
	}

	err := m.opener.Open(effect.URL, effect.Target)
	if m.bus != nil {
		m.bus.Publish(eventbus.URLOpenedEvent{URL: effect.URL, Target: effect.Target, Err: err})
	}
	if err != nil {
		log.Printf("Failed to open %s: %v", effect.URL, err)
		return m.setStatus(fmt.Sprintf("Failed to open: %v", err), views.StatusError)
	}
	return m.setStatus("Opened "+effect.Target, views.StatusSuccess)
}

func (m *Model) configPath() string {
	if m.configService == nil {
		return "(defaults)"
	}
	return m.configService.Path()
}

// setStatus shows a status message and schedules its removal
func (m *Model) setStatus(message string, kind views.StatusKind) tea.Cmd {
	m.statusSeq++
	m.viewModel.SetStatus(message, kind)
	return m.cmdExecutor.ExecuteClearStatus(m.statusSeq)
}

// applyConfig swaps in a reloaded configuration. The palette is closed while
// reloading, so the controller and input handler are rebuilt from scratch.
func (m *Model) applyConfig(cfg *config.Config) error {
	if err := palette.CatalogFromConfig(cfg).Validate(); err != nil {
		return err
	}

	m.palette.Close()
	m.config = cfg
	m.opener = m.openerFor(cfg)
	m.cmdExecutor.SetProvider(m.providerFor(cfg), cfg.FetchTimeout())
	m.inputHandler = input.New(cfg.Palette.Hotkey, cfg.Palette.Placeholder)
	m.palette = m.newController(cfg)
	m.hotkey.Rebind(m.inputHandler.Keys().Palette)
	m.syncHotkey()

	m.viewModel.SetConfig(cfg)
	m.viewModel.SetPalette(m.palette)
	m.viewModel.SetHelp(m.help, m.inputHandler.Keys())
	if m.selectedLink >= len(m.palette.Catalog().Links) {
		m.selectedLink = 0
	}
	return nil
}

// handleEvent turns domain events into status messages. URL opens set their
// status where they happen.
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.FetchFailedEvent:
		return m.setStatus(fmt.Sprintf("Could not load suggestions: %v", e.Err), views.StatusError)
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, views.StatusError)
	case eventbus.ConfigSavedEvent:
		return m.setStatus("Config written to "+e.Path, views.StatusInfo)
	}
	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case commands.ItemsLoadedMsg:
		m.palette.ApplyItems(msg.MountID, msg.Items, msg.Err)
		return m, nil

	case commands.ConfigReloadedMsg:
		if msg.Err == nil {
			msg.Err = m.applyConfig(msg.Config)
		}
		if msg.Err != nil {
			log.Printf("Config reload failed: %v", msg.Err)
			return m, m.setStatus(fmt.Sprintf("Reload failed: %v", msg.Err), views.StatusError)
		}
		log.Printf("Config reloaded from %s", m.configPath())
		return m, m.setStatus("Config reloaded", views.StatusSuccess)

	case commands.ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.viewModel.SetStatus("", views.StatusInfo)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case quitMsg:
		m.palette.Close()
		m.hotkey.Unsubscribe()
		return m, tea.Quit

	default:
		return m, nil
	}
}

// PaletteState exposes the palette lifecycle state
func (m *Model) PaletteState() palette.State {
	return m.palette.State()
}
