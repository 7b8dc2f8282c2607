package auth

import (
	"fmt"
	"os"
	"strings"
)

// FileKeyProvider reads an API key from a file on disk, so the key can live
// outside the settings file (e.g. a secrets mount).
type FileKeyProvider struct {
	path string
}

// NewFileKeyProvider creates a FileKeyProvider that reads from the given file path.
func NewFileKeyProvider(path string) *FileKeyProvider {
	return &FileKeyProvider{path: path}
}

// APIKey reads and returns the key, trimming whitespace.
func (f *FileKeyProvider) APIKey() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("reading api key from %s: %w", f.path, err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("api key file %s is empty", f.path)
	}

	return key, nil
}
