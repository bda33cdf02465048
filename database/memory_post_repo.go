package database

import (
	"sort"
	"sync"
	"time"

	"github.com/bikeoff/blog-backend/errs"
	"github.com/bikeoff/blog-backend/models"
)

// MemoryPostRepo keeps posts in process memory. It satisfies PostStore so
// the rest of the application is unaware that nothing is persisted. IDs come
// from a counter that only moves forward, so they are never reused even
// after deletes.
type MemoryPostRepo struct {
	mu     sync.Mutex
	posts  []models.Post
	nextID uint
}

func NewMemoryPostRepo() *MemoryPostRepo {
	return &MemoryPostRepo{nextID: 1}
}

func (r *MemoryPostRepo) FindAll() ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortNewestFirst(r.posts), nil
}

func (r *MemoryPostRepo) FindByCategory(category string) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Post
	for _, post := range r.posts {
		if post.Category == category {
			matched = append(matched, post)
		}
	}
	return sortNewestFirst(matched), nil
}

func (r *MemoryPostRepo) FindByID(id uint) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, post := range r.posts {
		if post.ID == id {
			found := post
			return &found, nil
		}
	}
	return nil, errs.NewNotFound("post")
}

func (r *MemoryPostRepo) Add(post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = r.nextID
	r.nextID++
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	r.posts = append(r.posts, *post)
	return nil
}

func (r *MemoryPostRepo) Update(post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == post.ID {
			r.posts[i] = *post
			return nil
		}
	}
	return errs.NewNotFound("post")
}

func (r *MemoryPostRepo) Delete(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryPostRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.posts)), nil
}

// sortNewestFirst copies before sorting so callers never see internal state.
// Ties on CreatedAt fall back to the higher id, which was assigned later.
func sortNewestFirst(posts []models.Post) []models.Post {
	out := make([]models.Post, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
