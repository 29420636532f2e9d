package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
)

func TestMemoryNoteStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryNoteStore()

	t.Run("unknown client is empty", func(t *testing.T) {
		notes, err := store.List(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("put and list", func(t *testing.T) {
		a := &entities.MeetingNote{ID: "a"}
		b := &entities.MeetingNote{ID: "b"}
		require.NoError(t, store.Put(ctx, "1", []*entities.MeetingNote{b, a}))

		notes, err := store.List(ctx, "1")
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "b", notes[0].ID)

		all, err := store.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all["1"], 2)
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		notes, err := store.List(ctx, "1")
		require.NoError(t, err)
		notes[0] = &entities.MeetingNote{ID: "mutated"}

		again, err := store.List(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "b", again[0].ID)
	})

	t.Run("empty put removes client", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "1", nil))
		all, err := store.ListAll(ctx)
		require.NoError(t, err)
		assert.NotContains(t, all, "1")
	})
}
