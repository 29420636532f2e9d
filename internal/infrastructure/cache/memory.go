package cache

import (
	"context"
	"sync"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
)

// MemoryNoteStore keeps meeting notes in a process-local map.
// Contents do not survive a restart.
type MemoryNoteStore struct {
	mu    sync.RWMutex
	items map[string][]*entities.MeetingNote
}

// NewMemoryNoteStore creates an empty in-memory note store
func NewMemoryNoteStore() *MemoryNoteStore {
	return &MemoryNoteStore{
		items: make(map[string][]*entities.MeetingNote),
	}
}

// List returns a copy of the client's notes
func (ms *MemoryNoteStore) List(_ context.Context, clientID string) ([]*entities.MeetingNote, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	notes := ms.items[clientID]
	out := make([]*entities.MeetingNote, len(notes))
	copy(out, notes)
	return out, nil
}

// ListAll returns a copy of every client's notes
func (ms *MemoryNoteStore) ListAll(_ context.Context) (map[string][]*entities.MeetingNote, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	out := make(map[string][]*entities.MeetingNote, len(ms.items))
	for clientID, notes := range ms.items {
		cp := make([]*entities.MeetingNote, len(notes))
		copy(cp, notes)
		out[clientID] = cp
	}
	return out, nil
}

// Put replaces the client's notes
func (ms *MemoryNoteStore) Put(_ context.Context, clientID string, notes []*entities.MeetingNote) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if len(notes) == 0 {
		delete(ms.items, clientID)
		return nil
	}
	cp := make([]*entities.MeetingNote, len(notes))
	copy(cp, notes)
	ms.items[clientID] = cp
	return nil
}
