package models

import (
	"time"
)

// DefaultEmoji is used when a post is created without one.
const DefaultEmoji = "📝"

// Post represents a single blog entry.
type Post struct {
	ID               uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title            string    `json:"title" db:"title" gorm:"type:text;not null"`
	Excerpt          string    `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	Content          string    `json:"content" db:"content" gorm:"type:text;not null"`
	Category         string    `json:"category" db:"category" gorm:"type:text;not null"`
	Emoji            string    `json:"emoji" db:"emoji" gorm:"type:text;default:'📝'"`
	Date             string    `json:"date" db:"date" gorm:"type:text;not null"`
	YouTubeURL       *string   `json:"youtube_url" db:"youtube_url" gorm:"type:text;column:youtube_url"`
	YouTubeID        *string   `json:"youtube_id" db:"youtube_id" gorm:"type:text;column:youtube_id"`
	StravaActivityID *string   `json:"strava_activity_id" db:"strava_activity_id" gorm:"type:text"`
	CreatedAt        time.Time `json:"-" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
