package search

import (
	"log"

	"cmdboard/internal/domain"
	"cmdboard/internal/ui/logic"
	"cmdboard/internal/ui/services/events"
)

// Service owns the palette query and derives the filtered view
type Service struct {
	state *State
	bus   events.EventBus
	opts  logic.MatchOptions
}

// NewService creates a new search service
func NewService(bus events.EventBus, opts logic.MatchOptions) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{},
		bus:   bus,
		opts:  opts,
	}
}

// SetQuery replaces the query
func (s *Service) SetQuery(query string) {
	if query == s.state.Query {
		return
	}
	old := s.state.Query
	s.state.Query = query
	s.bus.Publish(QueryChangedEvent{Old: old, New: query})
}

// Clear empties the query
func (s *Service) Clear() {
	if s.state.Query == "" {
		return
	}
	s.state.Query = ""
	s.bus.Publish(QueryClearedEvent{})
}

// Query returns the current query
func (s *Service) Query() string {
	return s.state.Query
}

// IsEmpty reports whether the query is empty
func (s *Service) IsEmpty() bool {
	return s.state.Query == ""
}

// Options returns the match policy
func (s *Service) Options() logic.MatchOptions {
	return s.opts
}

// View filters groups with the current query
func (s *Service) View(groups []domain.Group) []domain.Group {
	view := logic.FilterGroups(groups, s.state.Query, s.opts)
	if s.state.Query != "" {
		log.Printf("Search %q: %d items", s.state.Query, len(domain.Flatten(view)))
	}
	return view
}

// Hint returns a "did you mean" candidate when the current query matches nothing
func (s *Service) Hint(groups []domain.Group) (string, bool) {
	if s.state.Query == "" {
		return "", false
	}
	return logic.Suggest(domain.Flatten(groups), s.state.Query)
}
