package service

import (
	"errors"
	"strings"

	"github.com/mutantsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound     = errors.New("portfolio project not found")
	ErrProjectTitleMissing = errors.New("portfolio project title is required")
	ErrProjectSlugTaken    = errors.New("portfolio project slug is already in use")
)

// PortfolioService handles portfolio project CRUD.
type PortfolioService struct {
	db *gorm.DB
}

// PortfolioInput represents fields accepted when creating or updating a
// portfolio project.
type PortfolioInput struct {
	Title       string
	Slug        string
	Summary     string
	Body        string
	CoverURL    string
	Tags        []string
	ExternalURL string
	Featured    bool
	SortOrder   int
}

// NewPortfolioService creates a PortfolioService instance.
func NewPortfolioService(gdb *gorm.DB) *PortfolioService {
	return &PortfolioService{db: gdb}
}

// ListAll returns all projects ordered by priority for the admin screen.
func (s *PortfolioService) ListAll() ([]db.PortfolioProject, error) {
	var projects []db.PortfolioProject
	if err := s.db.Order("sort_order desc").Order("created_at desc").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListPublic returns projects for the portfolio page, featured entries first.
func (s *PortfolioService) ListPublic() ([]db.PortfolioProject, error) {
	var projects []db.PortfolioProject
	if err := s.db.Order("featured desc").Order("sort_order desc").Order("created_at desc").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListFeatured returns the featured projects shown on the home page.
func (s *PortfolioService) ListFeatured(limit int) ([]db.PortfolioProject, error) {
	if limit < 1 {
		limit = 4
	}
	var projects []db.PortfolioProject
	if err := s.db.Where("featured = ?", true).
		Order("sort_order desc").Order("created_at desc").
		Limit(limit).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetBySlug fetches one project for the public detail page.
func (s *PortfolioService) GetBySlug(projectSlug string) (*db.PortfolioProject, error) {
	var project db.PortfolioProject
	if err := s.db.Where("slug = ?", projectSlug).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Get fetches one project by id.
func (s *PortfolioService) Get(id uint) (*db.PortfolioProject, error) {
	var project db.PortfolioProject
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Create persists a new portfolio project.
func (s *PortfolioService) Create(input PortfolioInput) (*db.PortfolioProject, error) {
	project, err := buildProject(&db.PortfolioProject{}, input)
	if err != nil {
		return nil, err
	}

	if err := s.db.Create(project).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrProjectSlugTaken
		}
		return nil, err
	}
	return project, nil
}

// Update applies updates to an existing project.
func (s *PortfolioService) Update(id uint, input PortfolioInput) (*db.PortfolioProject, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	project, err := buildProject(existing, input)
	if err != nil {
		return nil, err
	}

	if err := s.db.Save(project).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrProjectSlugTaken
		}
		return nil, err
	}
	return project, nil
}

// Delete removes a project by id.
func (s *PortfolioService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.PortfolioProject{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// SplitTags turns the stored comma-separated tag list back into a slice.
func SplitTags(tags string) []string {
	parts := strings.Split(tags, ",")
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}

func buildProject(project *db.PortfolioProject, input PortfolioInput) (*db.PortfolioProject, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrProjectTitleMissing
	}

	projectSlug, err := normalizeEntrySlug(input.Slug, title)
	if err != nil {
		return nil, err
	}

	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}

	project.Title = title
	project.Slug = projectSlug
	project.Summary = strings.TrimSpace(input.Summary)
	project.Body = input.Body
	project.CoverURL = strings.TrimSpace(input.CoverURL)
	project.Tags = strings.Join(tags, ",")
	project.ExternalURL = strings.TrimSpace(input.ExternalURL)
	project.Featured = input.Featured
	project.SortOrder = input.SortOrder

	return project, nil
}
