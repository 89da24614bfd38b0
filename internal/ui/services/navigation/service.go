package navigation

import (
	"cmdboard/internal/domain"
	"cmdboard/internal/ui/services/events"
)

// Service is the palette page stack. All operations are total.
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new navigation service with an empty stack
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// Push makes page the current page
func (s *Service) Push(page domain.Page) {
	from := s.Current()
	s.state.Pages = append(s.state.Pages, page)
	s.publish(from)
}

// Pop removes the top page. Popping an empty stack is a no-op and returns false.
func (s *Service) Pop() bool {
	if len(s.state.Pages) == 0 {
		return false
	}
	from := s.Current()
	s.state.Pages = s.state.Pages[:len(s.state.Pages)-1]
	s.publish(from)
	return true
}

// Current returns the top page, or PageRoot when the stack is empty
func (s *Service) Current() domain.Page {
	if len(s.state.Pages) == 0 {
		return domain.PageRoot
	}
	return s.state.Pages[len(s.state.Pages)-1]
}

// Depth returns the number of pushed pages
func (s *Service) Depth() int {
	return len(s.state.Pages)
}

// IsEmpty reports whether the stack is empty
func (s *Service) IsEmpty() bool {
	return len(s.state.Pages) == 0
}

// Pages returns a copy of the stack, bottom first
func (s *Service) Pages() []domain.Page {
	out := make([]domain.Page, len(s.state.Pages))
	copy(out, s.state.Pages)
	return out
}

// Reset empties the stack
func (s *Service) Reset() {
	if len(s.state.Pages) == 0 {
		return
	}
	from := s.Current()
	s.state.Pages = nil
	s.publish(from)
}

func (s *Service) publish(from domain.Page) {
	s.bus.Publish(PageChangedEvent{
		From:  from,
		To:    s.Current(),
		Depth: len(s.state.Pages),
	})
}
