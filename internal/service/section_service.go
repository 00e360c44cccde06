package service

import (
	"errors"
	"log"
	"strings"

	"github.com/mutantsite/internal/content"
	"github.com/mutantsite/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSectionNotFound   = errors.New("page section not found")
	ErrSectionKeyMissing = errors.New("page slug and section key are required")
)

// SectionService owns the page section store and the request-time fold that
// turns a page's sections into a single content mapping.
type SectionService struct {
	db *gorm.DB
}

// SectionInput represents fields accepted when upserting a page section.
type SectionInput struct {
	PageSlug   string
	SectionKey string
	Content    content.Fields
}

// NewSectionService creates a SectionService instance.
func NewSectionService(gdb *gorm.DB) *SectionService {
	return &SectionService{db: gdb}
}

// Resolve folds all sections of a page into one mapping keyed by section
// key, each entry carrying the section's content verbatim. The fold iterates
// in updated_at order so a duplicate key, were one to slip past the store
// constraint, resolves to the most recently updated row. A query failure is
// logged and yields an empty mapping; callers treat missing sections as "use
// component defaults", never as a fatal condition.
func (s *SectionService) Resolve(pageSlug string) map[string]content.Fields {
	resolved := make(map[string]content.Fields)

	var sections []db.PageSection
	if err := s.db.Where("page_slug = ?", pageSlug).
		Order("updated_at asc").Order("id asc").
		Find(&sections).Error; err != nil {
		log.Printf("resolve sections for %q: %v", pageSlug, err)
		return resolved
	}

	for _, section := range sections {
		resolved[section.SectionKey] = section.Content
	}

	return resolved
}

// ListByPage returns all sections of one page for the admin editor.
func (s *SectionService) ListByPage(pageSlug string) ([]db.PageSection, error) {
	var sections []db.PageSection
	if err := s.db.Where("page_slug = ?", pageSlug).
		Order("section_key asc").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// ListPages returns the distinct page slugs that have at least one section.
func (s *SectionService) ListPages() ([]string, error) {
	var slugs []string
	if err := s.db.Model(&db.PageSection{}).
		Distinct("page_slug").
		Order("page_slug asc").
		Pluck("page_slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}

// Upsert creates or replaces the section identified by page slug and section
// key.
func (s *SectionService) Upsert(input SectionInput) (*db.PageSection, error) {
	pageSlug := strings.TrimSpace(input.PageSlug)
	sectionKey := strings.TrimSpace(input.SectionKey)
	if pageSlug == "" || sectionKey == "" {
		return nil, ErrSectionKeyMissing
	}

	payload := input.Content
	if payload == nil {
		payload = content.Fields{}
	}

	section := db.PageSection{
		PageSlug:   pageSlug,
		SectionKey: sectionKey,
		Content:    payload,
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "page_slug"}, {Name: "section_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"content":    payload,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&section).Error; err != nil {
		return nil, err
	}

	var saved db.PageSection
	if err := s.db.Where("page_slug = ? AND section_key = ?", pageSlug, sectionKey).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes one section by id.
func (s *SectionService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.PageSection{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSectionNotFound
	}
	return nil
}
