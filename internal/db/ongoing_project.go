package db

import "gorm.io/gorm"

// OngoingProject is a work-in-progress highlight shown in the home page
// marquee strip.
type OngoingProject struct {
	gorm.Model
	Title       string `gorm:"size:160;not null"`
	StatusLabel string `gorm:"size:80"`
	Note        string `gorm:"size:500"`
	LinkURL     string `gorm:"size:500"`
	SortOrder   int    `gorm:"default:0;index"`
}

// TableName keeps the store collection name explicit.
func (OngoingProject) TableName() string {
	return "ongoing_projects"
}
