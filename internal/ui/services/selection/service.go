package selection

import (
	"cmdboard/internal/domain"
	"cmdboard/internal/ui/services/events"
)

// Service tracks the highlighted item of the filtered view
type Service struct {
	state *State
	bus   events.EventBus
	wrap  bool
}

// NewService creates a new selection service. With wrap, moving past either end cycles around.
func NewService(bus events.EventBus, wrap bool) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{Index: -1},
		bus:   bus,
		wrap:  wrap,
	}
}

// OnViewChanged replaces the view, keeping the selected item when its name is still present
func (s *Service) OnViewChanged(view []domain.Item) {
	prev, hadPrev := s.Selected()

	s.state.View = view
	switch {
	case len(view) == 0:
		s.state.Index = -1
	case hadPrev:
		s.state.Index = 0
		for i, item := range view {
			if item.Name() == prev.Name() {
				s.state.Index = i
				break
			}
		}
	default:
		s.state.Index = 0
	}

	s.publish()
}

// MoveNext selects the following item
func (s *Service) MoveNext() {
	s.move(1)
}

// MovePrevious selects the preceding item
func (s *Service) MovePrevious() {
	s.move(-1)
}

// Select moves the cursor to the item named name, reporting whether it was found
func (s *Service) Select(name string) bool {
	for i, item := range s.state.View {
		if item.Name() == name {
			if i != s.state.Index {
				s.state.Index = i
				s.publish()
			}
			return true
		}
	}
	return false
}

// Activate returns the selected item, or ErrNoSelection on an empty view
func (s *Service) Activate() (domain.Item, error) {
	item, ok := s.Selected()
	if !ok {
		return nil, domain.ErrNoSelection
	}
	return item, nil
}

// Selected returns the highlighted item
func (s *Service) Selected() (domain.Item, bool) {
	if s.state.Index < 0 || s.state.Index >= len(s.state.View) {
		return nil, false
	}
	return s.state.View[s.state.Index], true
}

// Index returns the cursor position, -1 when nothing is selected
func (s *Service) Index() int {
	return s.state.Index
}

// Reset clears the view and the cursor
func (s *Service) Reset() {
	s.state.View = nil
	s.state.Index = -1
}

func (s *Service) move(delta int) {
	n := len(s.state.View)
	if n == 0 {
		return
	}

	next := s.state.Index + delta
	switch {
	case s.wrap:
		next = ((next % n) + n) % n
	case next < 0:
		next = 0
	case next >= n:
		next = n - 1
	}

	if next != s.state.Index {
		s.state.Index = next
		s.publish()
	}
}

func (s *Service) publish() {
	name := ""
	if item, ok := s.Selected(); ok {
		name = item.Name()
	}
	s.bus.Publish(SelectionChangedEvent{Name: name, Index: s.state.Index})
}
