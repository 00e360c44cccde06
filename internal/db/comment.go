package db

import "gorm.io/gorm"

// Comment is a public reader comment on a post. Comments stay hidden until
// an admin approves them.
type Comment struct {
	gorm.Model
	PostID   uint   `gorm:"index;not null"`
	Author   string `gorm:"size:120;not null"`
	Email    string `gorm:"size:255"`
	Body     string `gorm:"type:text;not null"`
	Approved bool   `gorm:"default:false;index"`
}
