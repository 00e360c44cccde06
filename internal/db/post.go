package db

import (
	"time"

	"gorm.io/gorm"
)

// Post statuses.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// Post is a blog article. Content is markdown, rendered and sanitized at the
// presentation layer.
type Post struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Slug        string `gorm:"size:160;uniqueIndex;not null"`
	Summary     string `gorm:"size:500"`
	Content     string `gorm:"type:text"`
	CoverURL    string `gorm:"size:500"`
	Status      string `gorm:"size:20;default:draft;index"`
	ReadingTime int
	PublishedAt *time.Time
	UserID      uint
	User        User
}
