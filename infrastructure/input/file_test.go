package input

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day05.txt")
	require.NoError(t, os.WriteFile(path, []byte("seeds: 79 14\r\n"), 0o644))

	got, err := NewFileSource(path).Load(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "seeds: 79 14", got)
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.txt")).Load(context.Background(), 5)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
