package database

import (
	"errors"

	"github.com/bikeoff/blog-backend/errs"
	"github.com/bikeoff/blog-backend/models"
	"gorm.io/gorm"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *PostRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns every post, newest first
func (r *PostRepo) FindAll() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

// FindByCategory returns posts whose category matches exactly, newest first
func (r *PostRepo) FindByCategory(category string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("category = ?", category).Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

// FindByID returns a post by its ID
func (r *PostRepo) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("post")
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post into the database. The store assigns the ID.
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update updates an existing post in the database
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes a post by id and reports whether it existed
func (r *PostRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Post{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Count returns the number of stored posts
func (r *PostRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Post{}).Count(&n).Error
	return n, err
}
