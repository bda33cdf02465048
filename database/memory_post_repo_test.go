package database

import (
	"testing"
	"time"

	"github.com/bikeoff/blog-backend/errs"
	"github.com/bikeoff/blog-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoAssignsMonotonicIDs(t *testing.T) {
	repo := NewMemoryPostRepo()

	a := models.Post{Title: "a", Excerpt: "x", Content: "x", Category: "cycling"}
	b := models.Post{Title: "b", Excerpt: "x", Content: "x", Category: "cycling"}
	require.NoError(t, repo.Add(&a))
	require.NoError(t, repo.Add(&b))
	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)

	existed, err := repo.Delete(b.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	// A new post must not reuse the deleted id.
	c := models.Post{Title: "c", Excerpt: "x", Content: "x", Category: "cycling"}
	require.NoError(t, repo.Add(&c))
	assert.Equal(t, uint(3), c.ID)
}

func TestMemoryRepoFindByIDMissing(t *testing.T) {
	repo := NewMemoryPostRepo()

	_, err := repo.FindByID(42)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestMemoryRepoDeleteMissingReportsFalse(t *testing.T) {
	repo := NewMemoryPostRepo()

	existed, err := repo.Delete(42)
	require.NoError(t, err)
	assert.False(t, existed)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemoryRepoListsNewestFirst(t *testing.T) {
	repo := NewMemoryPostRepo()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	old := models.Post{Title: "old", Excerpt: "x", Content: "x", Category: "cycling", CreatedAt: base}
	mid := models.Post{Title: "mid", Excerpt: "x", Content: "x", Category: "food", CreatedAt: base.Add(time.Hour)}
	new_ := models.Post{Title: "new", Excerpt: "x", Content: "x", Category: "cycling", CreatedAt: base.Add(2 * time.Hour)}
	require.NoError(t, repo.Add(&old))
	require.NoError(t, repo.Add(&mid))
	require.NoError(t, repo.Add(&new_))

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{all[0].Title, all[1].Title, all[2].Title})

	cycling, err := repo.FindByCategory("cycling")
	require.NoError(t, err)
	require.Len(t, cycling, 2)
	assert.Equal(t, "new", cycling[0].Title)
	assert.Equal(t, "old", cycling[1].Title)
}

func TestMemoryRepoUpdateMissingIsNotFound(t *testing.T) {
	repo := NewMemoryPostRepo()

	ghost := models.Post{ID: 9, Title: "ghost", Excerpt: "x", Content: "x", Category: "cycling"}
	err := repo.Update(&ghost)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}
