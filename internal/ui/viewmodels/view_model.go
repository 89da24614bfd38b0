package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"cmdboard/internal/config"
	"cmdboard/internal/domain"
	"cmdboard/internal/ui/input/modes"
	"cmdboard/internal/ui/palette"
	"cmdboard/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	config           *config.Config
	palette          *palette.Controller
	width            int
	height           int
	help             help.Model
	keys             modes.KeyMap
	selectedLink     int
	status           string
	statusKind       views.StatusKind
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(cfg *config.Config, ctrl *palette.Controller, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		config:           cfg,
		palette:          ctrl,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetConfig swaps the configuration after a reload
func (vm *ViewModel) SetConfig(cfg *config.Config) {
	vm.config = cfg
}

// SetPalette swaps the palette controller after a reload
func (vm *ViewModel) SetPalette(ctrl *palette.Controller) {
	vm.palette = ctrl
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it renders
func (vm *ViewModel) SetHelp(helpModel help.Model, keys modes.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetSelectedLink sets the dashboard cursor
func (vm *ViewModel) SetSelectedLink(index int) {
	vm.selectedLink = index
}

// SetStatus sets the status line
func (vm *ViewModel) SetStatus(message string, kind views.StatusKind) {
	vm.status = message
	vm.statusKind = kind
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		User:          vm.config.User,
		Hotkey:        vm.config.Palette.Hotkey,
		Links:         LinkRows(vm.palette.Catalog().Links),
		Commands:      LinkRows(vm.palette.Catalog().Commands),
		SelectedLink:  vm.selectedLink,
		StatusMessage: vm.status,
		StatusKind:    vm.statusKind,
		Palette:       vm.buildPaletteState(),
		HelpModel:     vm.help,
		Keys:          vm.keys,
	}
}

func (vm *ViewModel) buildPaletteState() *views.PaletteState {
	if !vm.palette.IsOpen() {
		return nil
	}
	state := &views.PaletteState{
		Input:    vm.inputTransformer.GetInputText(),
		Pages:    vm.palette.Pages(),
		Groups:   vm.palette.Groups(),
		Loading:  vm.palette.Loading(),
		Bindings: vm.keys.PaletteHelp(),
	}
	if item, ok := vm.palette.Selected(); ok {
		state.Selected = item.Name()
	}
	if hint, ok := vm.palette.Hint(); ok {
		state.Hint = hint
	}
	return state
}

// LinkRows converts items to dashboard rows
func LinkRows(items []domain.Item) []views.LinkRow {
	rows := make([]views.LinkRow, len(items))
	for i, item := range items {
		rows[i] = views.LinkRow{Name: item.Name(), Detail: item.Detail()}
	}
	return rows
}
