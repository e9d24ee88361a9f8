package newsservice

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/newsroom/newsdesk/app/models"
	"github.com/newsroom/newsdesk/app/repository"
	"github.com/newsroom/newsdesk/internal/pkg/storage"
)

// Stored images live under imageDir inside the storage backend; clients
// reach them via the publicPrefix, e.g. "storage/news_images/<token>.png".
const (
	imageDir     = "news_images"
	publicPrefix = "storage/"
)

// Service orchestrates validation, image storage side effects and
// repository calls for the news lifecycle.
type Service struct {
	repo  repository.NewsRepository
	store storage.Backend
}

// New creates a news service on top of a repository and a storage backend
func New(repo repository.NewsRepository, store storage.Backend) *Service {
	return &Service{repo: repo, store: store}
}

// List returns all articles ordered by date descending, creation time
// breaking ties.
func (s *Service) List(_ context.Context) ([]models.News, error) {
	news, err := s.repo.GetAll()
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return news, nil
}

// Get returns a single article by id.
func (s *Service) Get(_ context.Context, id uint64) (*models.News, error) {
	return s.find(id)
}

// Create validates the input, stores the optional image and persists a new
// article. No side effects occur when validation fails; a stored image is
// removed again when the insert fails.
func (s *Service) Create(ctx context.Context, in NewsInput, image *ImageUpload) (*models.News, error) {
	if fieldErrors := Validate(in, image); fieldErrors != nil {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, &ValidationError{Errors: map[string][]string{"date": {messageFor("date", "datetime")}}}
	}

	status := in.Status
	if status == "" {
		status = models.NewsStatusUnpublished
	}

	var imageURL *string
	var relPath string
	if image != nil {
		relPath = newImagePath(image.Filename)
		if err := s.store.Save(ctx, relPath, bytes.NewReader(image.Data)); err != nil {
			return nil, &StorageError{Op: "save", Err: err}
		}
		publicPath := publicPrefix + relPath
		imageURL = &publicPath
	}

	news := &models.News{
		Date:     date,
		Title:    in.Title,
		Category: in.Category,
		URL:      in.URL,
		ImageURL: imageURL,
		Status:   status,
	}

	if err := s.repo.Create(news); err != nil {
		if relPath != "" {
			// Compensation: don't leave an orphaned image behind
			if delErr := s.store.Delete(ctx, relPath); delErr != nil {
				log.Errorf("[News] Failed to clean up image %s after create failure: %v", relPath, delErr)
			}
		}
		return nil, &PersistenceError{Err: err}
	}

	return news, nil
}

// Update replaces the article's fields and optionally its image. The new
// image is written before the old one is deleted, so a storage or
// persistence failure never leaves the record pointing at a missing file.
func (s *Service) Update(ctx context.Context, id uint64, in NewsInput, image *ImageUpload) (*models.News, error) {
	news, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if fieldErrors := Validate(in, image); fieldErrors != nil {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, &ValidationError{Errors: map[string][]string{"date": {messageFor("date", "datetime")}}}
	}

	// Status keeps its current value when omitted
	status := in.Status
	if status == "" {
		status = news.Status
	}

	oldImageURL := news.ImageURL
	var newRelPath string
	if image != nil {
		newRelPath = newImagePath(image.Filename)
		if err := s.store.Save(ctx, newRelPath, bytes.NewReader(image.Data)); err != nil {
			return nil, &StorageError{Op: "save", Err: err}
		}
		publicPath := publicPrefix + newRelPath
		news.ImageURL = &publicPath
	}

	news.Date = date
	news.Title = in.Title
	news.Category = in.Category
	news.URL = in.URL
	news.Status = status

	if err := s.repo.Update(news); err != nil {
		if newRelPath != "" {
			if delErr := s.store.Delete(ctx, newRelPath); delErr != nil {
				log.Errorf("[News] Failed to clean up image %s after update failure: %v", newRelPath, delErr)
			}
		}
		return nil, &PersistenceError{Err: err}
	}

	// The old image is superseded, remove it best-effort
	if newRelPath != "" && oldImageURL != nil {
		if delErr := s.store.Delete(ctx, storageRelPath(*oldImageURL)); delErr != nil {
			log.Errorf("[News] Failed to delete superseded image %s: %v", *oldImageURL, delErr)
		}
	}

	return news, nil
}

// Delete removes the article and its stored image. Image deletion is
// best-effort and never blocks the record deletion.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	news, err := s.find(id)
	if err != nil {
		return err
	}

	if news.ImageURL != nil {
		if delErr := s.store.Delete(ctx, storageRelPath(*news.ImageURL)); delErr != nil {
			log.Errorf("[News] Failed to delete image %s for news %d: %v", *news.ImageURL, id, delErr)
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

// Publish marks the article as published. Publishing an already published
// article is a no-op success.
func (s *Service) Publish(_ context.Context, id uint64) (*models.News, error) {
	return s.setStatus(id, models.NewsStatusPublished)
}

// Unpublish marks the article as unpublished. Idempotent like Publish.
func (s *Service) Unpublish(_ context.Context, id uint64) (*models.News, error) {
	return s.setStatus(id, models.NewsStatusUnpublished)
}

func (s *Service) setStatus(id uint64, status string) (*models.News, error) {
	news, err := s.find(id)
	if err != nil {
		return nil, err
	}

	news.Status = status
	if err := s.repo.Update(news); err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return news, nil
}

func (s *Service) find(id uint64) (*models.News, error) {
	news, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Err: err}
	}
	return news, nil
}

// newImagePath builds a collision-resistant relative path for an uploaded
// image, keeping the original extension.
func newImagePath(filename string) string {
	return path.Join(imageDir, randomToken(40)+strings.ToLower(filepath.Ext(filename)))
}

// randomToken returns a random hex string of length n (n must be even).
func randomToken(n int) string {
	buf := make([]byte, n/2)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// storageRelPath maps a public image URL back to its backend-relative path.
func storageRelPath(imageURL string) string {
	return strings.TrimPrefix(imageURL, publicPrefix)
}
