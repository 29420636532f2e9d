package summary

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// PromptLoader supplies the system prompt for summary generation
type PromptLoader interface {
	Load(ctx context.Context) (string, error)
}

// FilePromptLoader reads the prompt from disk on every call so edits take
// effect without a restart.
type FilePromptLoader struct {
	path string
}

// NewFilePromptLoader creates a loader for path
func NewFilePromptLoader(path string) *FilePromptLoader {
	return &FilePromptLoader{path: path}
}

// Load returns the prompt text
func (l *FilePromptLoader) Load(_ context.Context) (string, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return "", fmt.Errorf("failed to load prompt %s: %w", l.path, err)
	}
	prompt := strings.TrimSpace(string(raw))
	if prompt == "" {
		return "", fmt.Errorf("prompt %s is empty", l.path)
	}
	return prompt, nil
}
