package transcript

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads and trims", func(t *testing.T) {
		path := filepath.Join(dir, "t.txt")
		require.NoError(t, os.WriteFile(path, []byte("\nAdviser: Hello\n\n"), 0o644))

		text, err := NewFileSource(path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Adviser: Hello", text)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.txt")
		require.NoError(t, os.WriteFile(path, []byte("  "), 0o644))

		_, err := NewFileSource(path).Load(context.Background())
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileSource(filepath.Join(dir, "none.txt")).Load(context.Background())
		assert.Error(t, err)
	})
}
