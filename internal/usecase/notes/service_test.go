package notes

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/internal/infrastructure/cache"
)

func newService(t *testing.T) *Service {
	return NewService(cache.NewMemoryNoteStore(), zaptest.NewLogger(t))
}

func note(id string) *entities.MeetingNote {
	return &entities.MeetingNote{ID: id, Date: "2024-03-05T14:30:00Z", Type: "regular", Summary: "summary " + id}
}

func ids(notes []*entities.MeetingNote) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func TestSaveIsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	require.NoError(t, s.Save(ctx, "1", note("A")))
	require.NoError(t, s.Save(ctx, "1", note("B")))

	got, err := s.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, ids(got))
}

func TestSaveKeepsDuplicates(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	require.NoError(t, s.Save(ctx, "1", note("A")))
	require.NoError(t, s.Save(ctx, "1", note("A")))

	got, err := s.Get(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetUnknownClient(t *testing.T) {
	s := newService(t)

	got, err := s.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetAll(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	require.NoError(t, s.Save(ctx, "1", note("A")))
	require.NoError(t, s.Save(ctx, "2", note("C")))

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids(all["1"]))
	assert.Equal(t, []string{"C"}, ids(all["2"]))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	require.NoError(t, s.Save(ctx, "1", note("A")))
	require.NoError(t, s.Save(ctx, "1", note("B")))
	require.NoError(t, s.Save(ctx, "1", note("A")))

	t.Run("never saved id", func(t *testing.T) {
		found, err := s.Delete(ctx, "1", "Z")
		require.NoError(t, err)
		assert.False(t, found)

		got, _ := s.Get(ctx, "1")
		assert.Equal(t, []string{"A", "B", "A"}, ids(got))
	})

	t.Run("unknown client", func(t *testing.T) {
		found, err := s.Delete(ctx, "9", "A")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("removes first match only", func(t *testing.T) {
		found, err := s.Delete(ctx, "1", "A")
		require.NoError(t, err)
		assert.True(t, found)

		got, _ := s.Get(ctx, "1")
		assert.Equal(t, []string{"B", "A"}, ids(got))
	})
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	require.NoError(t, s.Save(ctx, "1", note("A")))

	n, err := s.Find(ctx, "1", "A")
	require.NoError(t, err)
	assert.Equal(t, "summary A", n.Summary)

	_, err = s.Find(ctx, "1", "missing")
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
}

func TestConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Save(ctx, "1", note(fmt.Sprintf("n%d", i))))
		}(i)
	}
	wg.Wait()

	got, err := s.Get(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, got, 50)
}
