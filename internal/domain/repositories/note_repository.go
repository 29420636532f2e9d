package repositories

import (
	"context"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
)

// NoteRepository is the storage behind the meeting note store. Notes are
// held as one ordered list per client, most recent first.
type NoteRepository interface {
	// List returns the notes for a client; an unknown client yields an empty slice.
	List(ctx context.Context, clientID string) ([]*entities.MeetingNote, error)

	// ListAll returns every client's notes keyed by client id.
	ListAll(ctx context.Context) (map[string][]*entities.MeetingNote, error)

	// Put replaces a client's list.
	Put(ctx context.Context, clientID string, notes []*entities.MeetingNote) error
}
