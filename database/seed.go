package database

import (
	"time"

	"github.com/bikeoff/blog-backend/models"
	"github.com/rs/zerolog/log"
)

func strPtr(s string) *string { return &s }

// sample posts for local development, inserted only into an empty store
var samplePosts = []models.Post{
	{
		Title:    "Cotswolds Cycling Adventure",
		Excerpt:  "A perfect weekend exploring the rolling hills and charming villages of the Cotswolds, discovering hidden gems and sampling local delicacies along the way.",
		Content:  "Full blog post content would go here...",
		Category: "cycling",
		Emoji:    "🚴‍♂️",
		Date:     "2025-01-15",
	},
	{
		Title:    "Best Cake Stops in Yorkshire",
		Excerpt:  "Discovering the finest tea rooms and bakeries along the Yorkshire Dales cycling routes. From traditional Yorkshire parkin to modern artisan treats.",
		Content:  "Full blog post content would go here...",
		Category: "food",
		Emoji:    "🍰",
		Date:     "2025-01-10",
	},
	{
		Title:    "Essential Gear for British Weather",
		Excerpt:  "A comprehensive guide to staying comfortable and safe while cycling through Britain's unpredictable weather conditions.",
		Content:  "Full blog post content would go here...",
		Category: "gear",
		Emoji:    "⚙️",
		Date:     "2025-01-08",
	},
	{
		Title:      "Scotland's North Coast 500",
		Excerpt:    "An epic journey around Scotland's stunning coastline, featuring dramatic landscapes, historic castles, and unforgettable Highland hospitality.",
		Content:    "Full blog post content would go here...",
		Category:   "travel",
		Emoji:      "🗺️",
		Date:       "2025-01-05",
		YouTubeURL: strPtr("https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
		YouTubeID:  strPtr("dQw4w9WgXcQ"),
	},
}

// SeedSampleData inserts the development sample posts when the store is
// empty. A deployment convenience, never run against production data; the
// caller decides whether seeding applies at all.
func (d Database) SeedSampleData() error {
	count, err := d.postStore.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info().Int64("posts", count).Msg("existing posts preserved, skipping sample data")
		return nil
	}

	for i := range samplePosts {
		post := samplePosts[i]
		post.CreatedAt = time.Now().UTC()
		if err := d.postStore.Add(&post); err != nil {
			return err
		}
	}
	log.Info().Int("posts", len(samplePosts)).Msg("sample data created for development")
	return nil
}
