package db

import "gorm.io/gorm"

// PortfolioProject is a finished piece of client work shown on the portfolio
// page. Tags are stored as a comma-separated list.
type PortfolioProject struct {
	gorm.Model
	Title       string `gorm:"size:160;not null"`
	Slug        string `gorm:"size:160;uniqueIndex;not null"`
	Summary     string `gorm:"size:500"`
	Body        string `gorm:"type:text"`
	CoverURL    string `gorm:"size:500"`
	Tags        string `gorm:"size:255"`
	ExternalURL string `gorm:"size:500"`
	Featured    bool   `gorm:"default:false;index"`
	SortOrder   int    `gorm:"default:0;index"`
}

// TableName keeps the store collection name explicit.
func (PortfolioProject) TableName() string {
	return "portfolio"
}
