package db

import "gorm.io/gorm"

// Twitter card types accepted by the metadata admin screen.
const (
	TwitterCardSummary           = "summary"
	TwitterCardSummaryLargeImage = "summary_large_image"
	TwitterCardApp               = "app"
	TwitterCardPlayer            = "player"
)

// DefaultRobots is the robots directive applied when a record leaves it blank.
const DefaultRobots = "index, follow"

// PageMetadata holds the SEO and social tags for one page. At most one
// record exists per slug; pages without a record render from caller defaults.
type PageMetadata struct {
	gorm.Model
	PageSlug      string `gorm:"size:120;uniqueIndex;not null"`
	Title         string `gorm:"size:255"`
	Description   string `gorm:"size:500"`
	CanonicalURL  string `gorm:"size:500"`
	OGTitle       string `gorm:"size:255"`
	OGDescription string `gorm:"size:500"`
	OGImage       string `gorm:"size:500"`
	TwitterCard   string `gorm:"size:32"`
	TwitterImage  string `gorm:"size:500"`
	Robots        string `gorm:"size:120"`
}

// TableName keeps the store collection name explicit.
func (PageMetadata) TableName() string {
	return "page_metadata"
}
