package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/pkg/config"
)

const noteKeyPrefix = "meeting_notes:"

// NewRedisClient connects to Redis, retrying the initial ping with
// exponential backoff while the server comes up.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	ping := func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis not ready", zap.String("addr", cfg.Addr), zap.Error(err))
			return err
		}
		return nil
	}
	if err := backoff.Retry(ping, backoff.WithContext(bo, ctx)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// RedisNoteStore keeps each client's notes as one JSON array under its own key
type RedisNoteStore struct {
	client *redis.Client
}

// NewRedisNoteStore creates a note store backed by client
func NewRedisNoteStore(client *redis.Client) *RedisNoteStore {
	return &RedisNoteStore{client: client}
}

func noteKey(clientID string) string {
	return noteKeyPrefix + clientID
}

// List returns the client's notes
func (rs *RedisNoteStore) List(ctx context.Context, clientID string) ([]*entities.MeetingNote, error) {
	raw, err := rs.client.Get(ctx, noteKey(clientID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []*entities.MeetingNote{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read notes for client %s: %w", clientID, err)
	}

	var notes []*entities.MeetingNote
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes for client %s: %w", clientID, err)
	}
	return notes, nil
}

// ListAll scans every note key
func (rs *RedisNoteStore) ListAll(ctx context.Context) (map[string][]*entities.MeetingNote, error) {
	out := make(map[string][]*entities.MeetingNote)
	iter := rs.client.Scan(ctx, 0, noteKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		clientID := strings.TrimPrefix(iter.Val(), noteKeyPrefix)
		notes, err := rs.List(ctx, clientID)
		if err != nil {
			return nil, err
		}
		if len(notes) > 0 {
			out[clientID] = notes
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan note keys: %w", err)
	}
	return out, nil
}

// Put replaces the client's notes; an empty list removes the key
func (rs *RedisNoteStore) Put(ctx context.Context, clientID string, notes []*entities.MeetingNote) error {
	if len(notes) == 0 {
		return rs.client.Del(ctx, noteKey(clientID)).Err()
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes for client %s: %w", clientID, err)
	}
	if err := rs.client.Set(ctx, noteKey(clientID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write notes for client %s: %w", clientID, err)
	}
	return nil
}
