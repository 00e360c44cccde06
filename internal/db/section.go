package db

import (
	"github.com/mutantsite/internal/content"
	"gorm.io/gorm"
)

// PageSection is one named content block belonging to a page. Section keys
// are unique within a page; the composite index enforces it at the store
// layer so the resolver fold never has to break ties between live duplicates.
type PageSection struct {
	gorm.Model
	PageSlug   string         `gorm:"size:120;not null;uniqueIndex:idx_page_sections_page_key"`
	SectionKey string         `gorm:"size:120;not null;uniqueIndex:idx_page_sections_page_key"`
	Content    content.Fields `gorm:"type:text"`
}

// TableName keeps the store collection name explicit.
func (PageSection) TableName() string {
	return "page_sections"
}
