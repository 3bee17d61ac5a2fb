package input

import (
	"context"
	"fmt"
	"os"
)

// FileSource reads a single local file regardless of the requested day.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource.
func NewFileSource(path string) FileSource {
	return FileSource{path: path}
}

// Load reads the file.
func (s FileSource) Load(_ context.Context, _ int) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	return Normalize(string(data)), nil
}
