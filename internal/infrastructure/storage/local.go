package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrNotExist is returned by ReadJSON when the file is absent
var ErrNotExist = os.ErrNotExist

// JSONStore reads and writes pretty-printed JSON documents by relative path
type JSONStore interface {
	WriteJSON(ctx context.Context, relPath string, v interface{}) error
	ReadJSON(ctx context.Context, relPath string, v interface{}) error
}

// LocalStore writes JSON files below a root directory
type LocalStore struct {
	root string
}

// NewLocalStore creates a store rooted at root
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Root returns the base directory
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) path(relPath string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the data folder", relPath)
	}
	return filepath.Join(s.root, clean), nil
}

// WriteJSON encodes v with two-space indentation and writes it, creating the
// parent directory when it does not exist yet.
func (s *LocalStore) WriteJSON(_ context.Context, relPath string, v interface{}) error {
	_, err := s.write(relPath, v)
	return err
}

func (s *LocalStore) write(relPath string, v interface{}) ([]byte, error) {
	full, err := s.path(relPath)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", relPath, err)
	}

	if err := ensureDir(filepath.Dir(full)); err != nil {
		return nil, err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	return data, nil
}

// ReadJSON decodes the file at relPath into v
func (s *LocalStore) ReadJSON(_ context.Context, relPath string, v interface{}) error {
	full, err := s.path(relPath)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", relPath, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", relPath, err)
	}
	return nil
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", dir)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// MirroredStore writes to local disk and copies each document to object
// storage. Mirror failures are logged and never fail the write.
type MirroredStore struct {
	local  *LocalStore
	mirror *MinIOClient
	logger *zap.Logger
}

// NewMirroredStore creates a store that mirrors local writes to MinIO
func NewMirroredStore(local *LocalStore, mirror *MinIOClient, logger *zap.Logger) *MirroredStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MirroredStore{local: local, mirror: mirror, logger: logger}
}

// WriteJSON writes locally, then uploads the same bytes
func (s *MirroredStore) WriteJSON(ctx context.Context, relPath string, v interface{}) error {
	data, err := s.local.write(relPath, v)
	if err != nil {
		return err
	}
	if err := s.mirror.UploadJSON(ctx, filepath.ToSlash(filepath.Clean(relPath)), data); err != nil {
		s.logger.Warn("failed to mirror file to object storage",
			zap.String("path", relPath),
			zap.Error(err),
		)
	}
	return nil
}

// ReadJSON always reads the local copy
func (s *MirroredStore) ReadJSON(ctx context.Context, relPath string, v interface{}) error {
	return s.local.ReadJSON(ctx, relPath, v)
}
