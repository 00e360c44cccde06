package service

import (
	"errors"
	"strings"

	"github.com/mutantsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTestimonialNotFound      = errors.New("testimonial not found")
	ErrTestimonialQuoteMissing  = errors.New("testimonial quote is required")
	ErrTestimonialAuthorMissing = errors.New("testimonial author is required")
	ErrTestimonialRatingInvalid = errors.New("testimonial rating must be between 1 and 5")
)

// TestimonialService handles client testimonial CRUD.
type TestimonialService struct {
	db *gorm.DB
}

// TestimonialInput represents fields accepted when creating or updating a
// testimonial.
type TestimonialInput struct {
	Author    string
	Role      string
	Company   string
	Quote     string
	AvatarURL string
	Rating    int
	SortOrder int
}

// NewTestimonialService creates a TestimonialService instance.
func NewTestimonialService(gdb *gorm.DB) *TestimonialService {
	return &TestimonialService{db: gdb}
}

// ListAll returns all testimonials ordered by priority.
func (s *TestimonialService) ListAll() ([]db.Testimonial, error) {
	var testimonials []db.Testimonial
	if err := s.db.Order("sort_order desc").Order("created_at desc").
		Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// Create persists a new testimonial.
func (s *TestimonialService) Create(input TestimonialInput) (*db.Testimonial, error) {
	testimonial, err := buildTestimonial(&db.Testimonial{}, input)
	if err != nil {
		return nil, err
	}
	if err := s.db.Create(testimonial).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

// Update applies updates to an existing testimonial.
func (s *TestimonialService) Update(id uint, input TestimonialInput) (*db.Testimonial, error) {
	var existing db.Testimonial
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}

	testimonial, err := buildTestimonial(&existing, input)
	if err != nil {
		return nil, err
	}
	if err := s.db.Save(testimonial).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

// Delete removes a testimonial by id.
func (s *TestimonialService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.Testimonial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}

func buildTestimonial(testimonial *db.Testimonial, input TestimonialInput) (*db.Testimonial, error) {
	author := strings.TrimSpace(input.Author)
	if author == "" {
		return nil, ErrTestimonialAuthorMissing
	}
	quote := strings.TrimSpace(input.Quote)
	if quote == "" {
		return nil, ErrTestimonialQuoteMissing
	}

	rating := input.Rating
	if rating == 0 {
		rating = 5
	}
	if rating < 1 || rating > 5 {
		return nil, ErrTestimonialRatingInvalid
	}

	testimonial.Author = author
	testimonial.Role = strings.TrimSpace(input.Role)
	testimonial.Company = strings.TrimSpace(input.Company)
	testimonial.Quote = quote
	testimonial.AvatarURL = strings.TrimSpace(input.AvatarURL)
	testimonial.Rating = rating
	testimonial.SortOrder = input.SortOrder

	return testimonial, nil
}
