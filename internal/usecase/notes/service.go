// Package notes is the per-client meeting note store.
package notes

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/internal/domain/repositories"
)

// Service keeps each client's notes most recent first. Read-modify-write
// cycles against the repository are serialized by mu.
type Service struct {
	mu     sync.Mutex
	repo   repositories.NoteRepository
	logger *zap.Logger
}

// NewService creates a note store backed by repo
func NewService(repo repositories.NoteRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Save prepends note to the client's list. Saving the same id twice keeps both.
func (s *Service) Save(ctx context.Context, clientID string, note *entities.MeetingNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.List(ctx, clientID)
	if err != nil {
		return fmt.Errorf("failed to load notes for client %s: %w", clientID, err)
	}

	updated := make([]*entities.MeetingNote, 0, len(current)+1)
	updated = append(updated, note)
	updated = append(updated, current...)

	if err := s.repo.Put(ctx, clientID, updated); err != nil {
		return fmt.Errorf("failed to store notes for client %s: %w", clientID, err)
	}

	s.logger.Debug("meeting note saved",
		zap.String("client_id", clientID),
		zap.String("meeting_id", note.ID),
		zap.Int("count", len(updated)),
	)
	return nil
}

// Get returns the client's notes; an unknown client yields an empty slice
func (s *Service) Get(ctx context.Context, clientID string) ([]*entities.MeetingNote, error) {
	notes, err := s.repo.List(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []*entities.MeetingNote{}
	}
	return notes, nil
}

// GetAll returns every client's notes keyed by client id
func (s *Service) GetAll(ctx context.Context) (map[string][]*entities.MeetingNote, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = map[string][]*entities.MeetingNote{}
	}
	return all, nil
}

// Find returns the first note with meetingID
func (s *Service) Find(ctx context.Context, clientID, meetingID string) (*entities.MeetingNote, error) {
	notes, err := s.repo.List(ctx, clientID)
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		if n.ID == meetingID {
			return n, nil
		}
	}
	return nil, entities.ErrMeetingNotFound
}

// Delete removes the first note with meetingID and reports whether one was
// found. An unknown client is not an error.
func (s *Service) Delete(ctx context.Context, clientID, meetingID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.repo.List(ctx, clientID)
	if err != nil {
		return false, err
	}

	for i, n := range notes {
		if n.ID != meetingID {
			continue
		}
		updated := make([]*entities.MeetingNote, 0, len(notes)-1)
		updated = append(updated, notes[:i]...)
		updated = append(updated, notes[i+1:]...)
		if err := s.repo.Put(ctx, clientID, updated); err != nil {
			return false, fmt.Errorf("failed to store notes for client %s: %w", clientID, err)
		}
		s.logger.Debug("meeting note deleted",
			zap.String("client_id", clientID),
			zap.String("meeting_id", meetingID),
		)
		return true, nil
	}
	return false, nil
}
