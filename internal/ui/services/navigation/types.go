package navigation

import "cmdboard/internal/domain"

// State holds the page stack, top is last
type State struct {
	Pages []domain.Page
}

// Event types for navigation changes
type PageChangedEvent struct {
	From  domain.Page
	To    domain.Page
	Depth int
}
