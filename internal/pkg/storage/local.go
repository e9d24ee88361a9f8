package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2/log"
)

// LocalBackend stores files on the local filesystem under a base path that
// is served as the public static storage root.
type LocalBackend struct {
	basePath string
}

// NewLocalBackend creates a filesystem-backed storage backend
func NewLocalBackend(basePath string) *LocalBackend {
	return &LocalBackend{basePath: basePath}
}

// BasePath returns the directory the backend writes into.
func (b *LocalBackend) BasePath() string {
	return b.basePath
}

// Save writes data to basePath/relativePath, creating parent directories.
// A partially written file is removed on copy failure.
func (b *LocalBackend) Save(_ context.Context, relativePath string, data io.Reader) error {
	fullPath := filepath.Join(b.basePath, relativePath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", fullPath, err)
	}
	defer file.Close()

	bytesWritten, err := io.Copy(file, data)
	if err != nil {
		// Clean up partial file
		os.Remove(fullPath)
		return fmt.Errorf("failed to write file %s: %w", fullPath, err)
	}

	log.Debugf("[Storage] Saved file %s (%d bytes)", relativePath, bytesWritten)
	return nil
}

// Delete removes basePath/relativePath. A missing file is not an error.
func (b *LocalBackend) Delete(_ context.Context, relativePath string) error {
	fullPath := filepath.Join(b.basePath, relativePath)

	if err := os.Remove(fullPath); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
		}
	}
	return nil
}
