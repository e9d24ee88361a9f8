package repository

import (
	"github.com/newsroom/newsdesk/app/models"
	"gorm.io/gorm"
)

// NewsRepository defines the interface for news-related database operations
type NewsRepository interface {
	Create(news *models.News) error
	GetByID(id uint64) (*models.News, error)
	GetAll() ([]models.News, error)
	Update(news *models.News) error
	Delete(id uint64) error
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	News NewsRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		News: NewNewsRepository(db),
	}
}
