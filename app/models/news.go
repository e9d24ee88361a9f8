package models

import (
	"time"
)

// News status values. Both transitions are total and idempotent.
const (
	NewsStatusPublished   = "published"
	NewsStatusUnpublished = "unpublished"
)

// NewsCategories is the fixed set of accepted categories.
var NewsCategories = []string{
	"technology",
	"business",
	"sports",
	"entertainment",
	"health",
	"science",
	"politics",
	"world",
}

// News represents a single news article reference
type News struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;index" json:"date"`
	Title     string    `gorm:"type:varchar(200)" json:"title"`
	Category  string    `gorm:"type:varchar(50);index" json:"category"`
	URL       string    `gorm:"type:varchar(500)" json:"url"`
	ImageURL  *string   `gorm:"type:varchar(255)" json:"image_url"`
	Status    string    `gorm:"type:varchar(20);default:unpublished;index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the News model
func (News) TableName() string {
	return "news"
}

// IsPublished reports whether the article is visible to end consumers.
func (n *News) IsPublished() bool {
	return n.Status == NewsStatusPublished
}

// IsValidNewsCategory checks membership in the fixed category set.
func IsValidNewsCategory(category string) bool {
	for _, c := range NewsCategories {
		if c == category {
			return true
		}
	}
	return false
}
