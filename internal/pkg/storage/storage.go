package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/newsroom/newsdesk/internal/pkg/env"
)

// Backend abstracts the location uploaded files are written to. Paths are
// relative to the public storage root, e.g. "news_images/<token>.png".
type Backend interface {
	Save(ctx context.Context, relativePath string, data io.Reader) error
	Delete(ctx context.Context, relativePath string) error
}

// NewBackendFromEnv selects the storage driver based on STORAGE_DRIVER.
// Supported drivers: "local" (default) and "s3".
func NewBackendFromEnv() (Backend, error) {
	driver := env.GetEnv("STORAGE_DRIVER", "local")
	switch driver {
	case "local":
		return NewLocalBackend(env.GetEnv("STORAGE_PATH", "./public/storage")), nil
	case "s3":
		cfg, err := LoadS3Config()
		if err != nil {
			return nil, err
		}
		return NewS3Backend(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", driver)
	}
}
