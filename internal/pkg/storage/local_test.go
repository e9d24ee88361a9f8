package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBackendSaveAndDelete(t *testing.T) {
	t.Parallel()

	basePath := t.TempDir()
	backend := NewLocalBackend(basePath)
	ctx := context.Background()

	err := backend.Save(ctx, "news_images/token.png", bytes.NewReader([]byte("payload")))
	require.NoError(t, err)

	fullPath := filepath.Join(basePath, "news_images", "token.png")
	data, err := os.ReadFile(fullPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	require.NoError(t, backend.Delete(ctx, "news_images/token.png"))
	assert.NoFileExists(t, fullPath)
}

func TestLocalBackendSaveCreatesDirectories(t *testing.T) {
	t.Parallel()

	basePath := t.TempDir()
	backend := NewLocalBackend(basePath)

	err := backend.Save(context.Background(), "a/b/c.txt", bytes.NewReader([]byte("x")))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(basePath, "a", "b", "c.txt"))
}

func TestLocalBackendDeleteMissingFileIsNoError(t *testing.T) {
	t.Parallel()

	backend := NewLocalBackend(t.TempDir())
	assert.NoError(t, backend.Delete(context.Background(), "news_images/missing.png"))
}

func TestNewBackendFromEnvRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "ftp")

	_, err := NewBackendFromEnv()
	assert.Error(t, err)
}

func TestNewBackendFromEnvDefaultsToLocal(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("STORAGE_PATH", t.TempDir())

	backend, err := NewBackendFromEnv()
	require.NoError(t, err)
	assert.IsType(t, &LocalBackend{}, backend)
}
