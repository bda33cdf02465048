package database

import (
	"github.com/bikeoff/blog-backend/models"
)

// PostStore is the persistence contract shared by the gorm-backed repo and
// the in-memory variant. Listing operations return posts newest-first by
// creation time.
type PostStore interface {
	FindAll() ([]models.Post, error)
	FindByCategory(category string) ([]models.Post, error)
	FindByID(id uint) (*models.Post, error)
	Add(post *models.Post) error
	Update(post *models.Post) error
	Delete(id uint) (existed bool, err error)
	Count() (int64, error)
}
