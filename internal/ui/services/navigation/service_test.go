package navigation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cmdboard/internal/domain"
	"cmdboard/internal/ui/services/events"
)

func TestEmptyStack(t *testing.T) {
	s := NewService(nil)
	require.Equal(t, domain.PageRoot, s.Current())
	require.True(t, s.IsEmpty())

	require.False(t, s.Pop(), "pop on empty stack is a no-op")
	require.Empty(t, s.Pages())
}

func TestPushThenPopRestoresStack(t *testing.T) {
	stacks := [][]domain.Page{
		nil,
		{domain.PagePullRequest},
		{domain.PagePullRequest, domain.PageTeams},
	}
	for _, initial := range stacks {
		s := NewService(nil)
		for _, p := range initial {
			s.Push(p)
		}
		before := s.Pages()

		s.Push(domain.PageTeams)
		require.Equal(t, domain.PageTeams, s.Current())
		require.True(t, s.Pop())

		require.Equal(t, before, s.Pages())
	}
}

func TestPublishesPageChanges(t *testing.T) {
	rec := &events.Recorder{}
	s := NewService(rec)

	s.Push(domain.PagePullRequest)
	s.Pop()
	s.Pop()

	require.Equal(t, []interface{}{
		PageChangedEvent{From: domain.PageRoot, To: domain.PagePullRequest, Depth: 1},
		PageChangedEvent{From: domain.PagePullRequest, To: domain.PageRoot, Depth: 0},
	}, rec.Events)
}

func TestResetAndPagesCopy(t *testing.T) {
	s := NewService(nil)
	s.Push(domain.PagePullRequest)
	s.Push(domain.PageTeams)

	pages := s.Pages()
	pages[0] = "mutated"
	require.Equal(t, domain.PagePullRequest, s.Pages()[0])
	require.Equal(t, 2, s.Depth())

	s.Reset()
	require.True(t, s.IsEmpty())
}
