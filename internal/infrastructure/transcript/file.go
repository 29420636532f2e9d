package transcript

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// FileSource serves a fixed transcript from disk. It stands in for live
// transcription when a meeting has no recording.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading path on every Load
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads the transcript file
func (f *FileSource) Load(_ context.Context) (string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript %s: %w", f.path, err)
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "", fmt.Errorf("transcript %s is empty", f.path)
	}
	return text, nil
}
