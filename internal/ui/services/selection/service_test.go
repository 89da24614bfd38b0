package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cmdboard/internal/domain"
	"cmdboard/internal/ui/services/events"
)

func items(names ...string) []domain.Item {
	out := make([]domain.Item, len(names))
	for i, n := range names {
		out[i] = domain.Suggestion{Title: n}
	}
	return out
}

func selectedName(t *testing.T, s *Service) string {
	t.Helper()
	item, ok := s.Selected()
	require.True(t, ok)
	return item.Name()
}

func TestFirstViewSelectsFirstItem(t *testing.T) {
	s := NewService(nil, true)
	s.OnViewChanged(items("Figma", "YouTube"))
	require.Equal(t, 0, s.Index())
	require.Equal(t, "Figma", selectedName(t, s))
}

func TestSelectionPreservedByName(t *testing.T) {
	s := NewService(nil, true)
	s.OnViewChanged(items("Figma", "GitHub", "YouTube"))
	s.MoveNext()
	require.Equal(t, "GitHub", selectedName(t, s))

	// GitHub moves to index 0 in the new view
	s.OnViewChanged(items("GitHub", "YouTube"))
	require.Equal(t, 0, s.Index())
	require.Equal(t, "GitHub", selectedName(t, s))

	// GitHub disappears: fall back to the first item
	s.OnViewChanged(items("YouTube", "Figma"))
	require.Equal(t, "YouTube", selectedName(t, s))

	// empty view: nothing selected
	s.OnViewChanged(nil)
	require.Equal(t, -1, s.Index())
	_, ok := s.Selected()
	require.False(t, ok)
}

func TestMoveWrapsAround(t *testing.T) {
	s := NewService(nil, true)
	s.OnViewChanged(items("A", "B", "C"))

	s.MovePrevious()
	require.Equal(t, "C", selectedName(t, s))
	s.MoveNext()
	require.Equal(t, "A", selectedName(t, s))
}

func TestMoveClampsWithoutWrap(t *testing.T) {
	s := NewService(nil, false)
	s.OnViewChanged(items("A", "B"))

	s.MovePrevious()
	require.Equal(t, "A", selectedName(t, s))
	s.MoveNext()
	s.MoveNext()
	require.Equal(t, "B", selectedName(t, s))
}

func TestActivateOnEmptyView(t *testing.T) {
	s := NewService(nil, true)
	s.OnViewChanged(nil)
	s.MoveNext()

	_, err := s.Activate()
	require.ErrorIs(t, err, domain.ErrNoSelection)

	s.OnViewChanged(items("Figma"))
	item, err := s.Activate()
	require.NoError(t, err)
	require.Equal(t, "Figma", item.Name())
}

func TestSelectByNameAndEvents(t *testing.T) {
	rec := &events.Recorder{}
	s := NewService(rec, true)
	s.OnViewChanged(items("A", "B"))

	require.True(t, s.Select("B"))
	require.False(t, s.Select("Z"))
	require.Equal(t, "B", selectedName(t, s))

	require.Equal(t, []interface{}{
		SelectionChangedEvent{Name: "A", Index: 0},
		SelectionChangedEvent{Name: "B", Index: 1},
	}, rec.Events)
}
