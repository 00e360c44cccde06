package service

import (
	"errors"
	"strings"

	"github.com/mutantsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrOngoingProjectNotFound     = errors.New("ongoing project not found")
	ErrOngoingProjectTitleMissing = errors.New("ongoing project title is required")
)

// OngoingProjectService handles the work-in-progress highlights shown on the
// home page.
type OngoingProjectService struct {
	db *gorm.DB
}

// OngoingProjectInput represents fields accepted when creating or updating
// an ongoing project.
type OngoingProjectInput struct {
	Title       string
	StatusLabel string
	Note        string
	LinkURL     string
	SortOrder   int
}

// NewOngoingProjectService creates an OngoingProjectService instance.
func NewOngoingProjectService(gdb *gorm.DB) *OngoingProjectService {
	return &OngoingProjectService{db: gdb}
}

// ListAll returns all ongoing projects ordered by priority.
func (s *OngoingProjectService) ListAll() ([]db.OngoingProject, error) {
	var projects []db.OngoingProject
	if err := s.db.Order("sort_order desc").Order("created_at desc").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Create persists a new ongoing project.
func (s *OngoingProjectService) Create(input OngoingProjectInput) (*db.OngoingProject, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrOngoingProjectTitleMissing
	}

	project := db.OngoingProject{
		Title:       title,
		StatusLabel: strings.TrimSpace(input.StatusLabel),
		Note:        strings.TrimSpace(input.Note),
		LinkURL:     strings.TrimSpace(input.LinkURL),
		SortOrder:   input.SortOrder,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update applies updates to an existing ongoing project.
func (s *OngoingProjectService) Update(id uint, input OngoingProjectInput) (*db.OngoingProject, error) {
	var project db.OngoingProject
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOngoingProjectNotFound
		}
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrOngoingProjectTitleMissing
	}

	project.Title = title
	project.StatusLabel = strings.TrimSpace(input.StatusLabel)
	project.Note = strings.TrimSpace(input.Note)
	project.LinkURL = strings.TrimSpace(input.LinkURL)
	project.SortOrder = input.SortOrder

	if err := s.db.Save(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes an ongoing project by id.
func (s *OngoingProjectService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.OngoingProject{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOngoingProjectNotFound
	}
	return nil
}
