package db

import "gorm.io/gorm"

// Testimonial is a client quote shown on the home page.
type Testimonial struct {
	gorm.Model
	Author    string `gorm:"size:120;not null"`
	Role      string `gorm:"size:120"`
	Company   string `gorm:"size:120"`
	Quote     string `gorm:"type:text;not null"`
	AvatarURL string `gorm:"size:500"`
	Rating    int    `gorm:"default:5"`
	SortOrder int    `gorm:"default:0;index"`
}
