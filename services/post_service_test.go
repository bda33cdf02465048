package services

import (
	"errors"
	"testing"
	"time"

	"github.com/bikeoff/blog-backend/database"
	"github.com/bikeoff/blog-backend/errs"
	"github.com/bikeoff/blog-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*PostService, *database.MemoryPostRepo) {
	store := database.NewMemoryPostRepo()
	return NewPostService(store), store
}

func validInput() PostInput {
	return PostInput{
		Title:    "Cotswolds Cycling Adventure",
		Excerpt:  "A perfect weekend in the hills.",
		Content:  "Full post content.",
		Category: "cycling",
	}
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	svc, _ := newTestService()

	post, err := svc.Create(validInput())
	require.NoError(t, err)

	assert.NotZero(t, post.ID)
	assert.Equal(t, "📝", post.Emoji)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), post.Date)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Nil(t, post.YouTubeID)
	assert.Nil(t, post.YouTubeURL)
}

func TestCreateDerivesYouTubeID(t *testing.T) {
	svc, _ := newTestService()

	url := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	input := validInput()
	input.YouTubeURL = &url

	post, err := svc.Create(input)
	require.NoError(t, err)
	require.NotNil(t, post.YouTubeID)
	assert.Equal(t, "dQw4w9WgXcQ", *post.YouTubeID)
}

func TestCreateUnparseableURLLeavesIDNil(t *testing.T) {
	svc, _ := newTestService()

	url := "https://example.com/not-youtube"
	input := validInput()
	input.YouTubeURL = &url

	post, err := svc.Create(input)
	require.NoError(t, err)
	assert.Equal(t, url, *post.YouTubeURL)
	assert.Nil(t, post.YouTubeID)
}

func TestCreateMissingFieldsPersistsNothing(t *testing.T) {
	svc, store := newTestService()

	input := validInput()
	input.Title = ""
	input.Category = ""

	_, err := svc.Create(input)
	require.Error(t, err)
	assert.True(t, errs.IsMissingRequiredFieldError(err))
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "category")

	count, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreatedIDsAreNeverReused(t *testing.T) {
	svc, _ := newTestService()

	seen := make(map[uint]bool)
	for i := 0; i < 5; i++ {
		post, err := svc.Create(validInput())
		require.NoError(t, err)
		assert.False(t, seen[post.ID], "id %d reused", post.ID)
		seen[post.ID] = true

		existed, err := svc.Delete(post.ID)
		require.NoError(t, err)
		assert.True(t, existed)
	}
}

func TestUpdateReplacesEditableFieldsOnly(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(validInput())
	require.NoError(t, err)

	url := "https://youtu.be/dQw4w9WgXcQ"
	updated, err := svc.Update(created.ID, PostInput{
		Title:      "New title",
		Excerpt:    "New excerpt",
		Content:    "New content",
		Category:   "travel",
		YouTubeURL: &url,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Date, updated.Date)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "travel", updated.Category)
	require.NotNil(t, updated.YouTubeID)
	assert.Equal(t, "dQw4w9WgXcQ", *updated.YouTubeID)

	fetched, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, fetched)
}

func TestUpdateKeepsEmojiWhenOmitted(t *testing.T) {
	svc, _ := newTestService()

	input := validInput()
	input.Emoji = "🚴"
	created, err := svc.Create(input)
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, validInput())
	require.NoError(t, err)
	assert.Equal(t, "🚴", updated.Emoji)

	withEmoji := validInput()
	withEmoji.Emoji = "🍰"
	updated, err = svc.Update(created.ID, withEmoji)
	require.NoError(t, err)
	assert.Equal(t, "🍰", updated.Emoji)
}

func TestUpdateRederivesStaleYouTubeID(t *testing.T) {
	svc, _ := newTestService()

	url := "https://youtu.be/dQw4w9WgXcQ"
	input := validInput()
	input.YouTubeURL = &url
	created, err := svc.Create(input)
	require.NoError(t, err)
	require.NotNil(t, created.YouTubeID)

	// Dropping the URL must drop the derived id with it.
	updated, err := svc.Update(created.ID, validInput())
	require.NoError(t, err)
	assert.Nil(t, updated.YouTubeURL)
	assert.Nil(t, updated.YouTubeID)
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(99, validInput())
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestDeleteMissingIDReportsNotExisted(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(validInput())
	require.NoError(t, err)

	existed, err := svc.Delete(99)
	require.NoError(t, err)
	assert.False(t, existed)

	// The store is untouched.
	posts := svc.List("")
	require.Len(t, posts, 1)
	assert.Equal(t, created.ID, posts[0].ID)
}

func TestListFiltersAndOrders(t *testing.T) {
	svc, _ := newTestService()

	food := validInput()
	food.Title = "Best Cake Stops in Yorkshire"
	food.Category = "food"

	first, err := svc.Create(validInput())
	require.NoError(t, err)
	second, err := svc.Create(food)
	require.NoError(t, err)
	third, err := svc.Create(validInput())
	require.NoError(t, err)

	all := svc.List("")
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)

	// "all" and the blog alias are the same set as no filter.
	assert.Equal(t, all, svc.List(CategoryAll))
	assert.Equal(t, all, svc.List(CategoryBlog))

	foodOnly := svc.List("food")
	require.Len(t, foodOnly, 1)
	assert.Equal(t, second.ID, foodOnly[0].ID)

	// Category matching is exact and case-sensitive.
	assert.Empty(t, svc.List("Food"))
}

func TestListDegradesToEmptyOnStoreError(t *testing.T) {
	svc := NewPostService(failingStore{})
	assert.Empty(t, svc.List(""))
	assert.Empty(t, svc.List("food"))
}

// failingStore simulates unhealthy storage.
type failingStore struct{}

var errStoreDown = errors.New("connection refused")

func (failingStore) FindAll() ([]models.Post, error)              { return nil, errStoreDown }
func (failingStore) FindByCategory(string) ([]models.Post, error) { return nil, errStoreDown }
func (failingStore) FindByID(uint) (*models.Post, error)          { return nil, errStoreDown }
func (failingStore) Add(*models.Post) error                       { return errStoreDown }
func (failingStore) Update(*models.Post) error                    { return errStoreDown }
func (failingStore) Delete(uint) (bool, error)                    { return false, errStoreDown }
func (failingStore) Count() (int64, error)                        { return 0, errStoreDown }
