package services

import (
	"time"

	"github.com/bikeoff/blog-backend/database"
	"github.com/bikeoff/blog-backend/errs"
	"github.com/bikeoff/blog-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CategoryAll and CategoryBlog both mean "no filter" on listing routes.
const (
	CategoryAll  = "all"
	CategoryBlog = "blog"
)

// PostInput carries the editable fields of a post, decoded from either a
// JSON or a form-encoded request body. The business logic downstream is the
// same regardless of wire encoding.
type PostInput struct {
	Title            string  `json:"title"`
	Excerpt          string  `json:"excerpt"`
	Content          string  `json:"content"`
	Category         string  `json:"category"`
	Emoji            string  `json:"emoji"`
	YouTubeURL       *string `json:"youtube_url"`
	StravaActivityID *string `json:"strava_activity_id"`
}

// PostService validates and transforms input between the request boundary
// and the post store.
type PostService struct {
	store  database.PostStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewPostService(store database.PostStore) *PostService {
	return &PostService{
		store:  store,
		logger: log.With().Str("serviceName", "postService").Logger(),
		now:    time.Now,
	}
}

// missingFields returns the required fields that are empty, in a fixed order
func (s *PostService) missingFields(input PostInput) []string {
	var missing []string
	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.Excerpt == "" {
		missing = append(missing, "excerpt")
	}
	if input.Content == "" {
		missing = append(missing, "content")
	}
	if input.Category == "" {
		missing = append(missing, "category")
	}
	return missing
}

// Create validates input, derives the youtube id, stamps the creation date
// and persists the post. The store assigns the id.
func (s *PostService) Create(input PostInput) (*models.Post, error) {
	if missing := s.missingFields(input); len(missing) > 0 {
		return nil, errs.NewMissingFieldsError(missing)
	}

	now := s.now().UTC()
	post := models.Post{
		Title:            input.Title,
		Excerpt:          input.Excerpt,
		Content:          input.Content,
		Category:         input.Category,
		Emoji:            input.Emoji,
		Date:             now.Format("2006-01-02"),
		YouTubeURL:       input.YouTubeURL,
		YouTubeID:        deriveYouTubeID(input.YouTubeURL),
		StravaActivityID: input.StravaActivityID,
		CreatedAt:        now,
	}
	if post.Emoji == "" {
		post.Emoji = models.DefaultEmoji
	}

	if err := s.store.Add(&post); err != nil {
		return nil, errs.NewDatabaseError("create", "post", err)
	}
	return &post, nil
}

// Update replaces the editable fields of an existing post. The id, date and
// creation time never change; the youtube id is re-derived from the
// submitted URL so it can not go stale.
func (s *PostService) Update(id uint, input PostInput) (*models.Post, error) {
	if missing := s.missingFields(input); len(missing) > 0 {
		return nil, errs.NewMissingFieldsError(missing)
	}

	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Excerpt = input.Excerpt
	existing.Content = input.Content
	existing.Category = input.Category
	// An empty emoji is indistinguishable from an omitted one, so the
	// stored glyph stays rather than being blanked.
	if input.Emoji != "" {
		existing.Emoji = input.Emoji
	}
	existing.YouTubeURL = input.YouTubeURL
	existing.YouTubeID = deriveYouTubeID(input.YouTubeURL)
	existing.StravaActivityID = input.StravaActivityID

	if err := s.store.Update(existing); err != nil {
		return nil, errs.NewDatabaseError("update", "post", err)
	}
	return existing, nil
}

// Get returns a post by id, or a not-found error.
func (s *PostService) Get(id uint) (*models.Post, error) {
	return s.store.FindByID(id)
}

// Delete removes a post and reports whether it existed. A missing id is not
// an error; the caller turns the report into a user-visible message.
func (s *PostService) Delete(id uint) (bool, error) {
	existed, err := s.store.Delete(id)
	if err != nil {
		return false, errs.NewDatabaseError("delete", "post", err)
	}
	return existed, nil
}

// List returns posts newest-first. An empty filter, "all" or "blog" returns
// everything; any other value matches category exactly, case-sensitive.
// Store failures degrade to an empty list so read paths stay available.
func (s *PostService) List(categoryFilter string) []models.Post {
	var (
		posts []models.Post
		err   error
	)
	if categoryFilter == "" || categoryFilter == CategoryAll || categoryFilter == CategoryBlog {
		posts, err = s.store.FindAll()
	} else {
		posts, err = s.store.FindByCategory(categoryFilter)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("filter", categoryFilter).Msg("listing posts failed, serving empty list")
		return []models.Post{}
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts
}

func deriveYouTubeID(url *string) *string {
	if url == nil {
		return nil
	}
	id := ExtractYouTubeID(*url)
	if id == "" {
		return nil
	}
	return &id
}
