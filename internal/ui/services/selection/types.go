package selection

import "cmdboard/internal/domain"

// State holds the cursor over the flattened filtered view
type State struct {
	View  []domain.Item
	Index int // -1 when the view is empty
}

// Event types
type SelectionChangedEvent struct {
	Name  string // empty when nothing is selected
	Index int
}
