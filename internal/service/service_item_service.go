package service

import (
	"errors"
	"strings"

	"github.com/mutantsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrServiceItemNotFound     = errors.New("service item not found")
	ErrServiceItemTitleMissing = errors.New("service item title is required")
)

// ServiceItemService handles the agency service catalog CRUD.
type ServiceItemService struct {
	db *gorm.DB
}

// ServiceItemInput represents fields accepted when creating or updating a
// service item.
type ServiceItemInput struct {
	Title       string
	Description string
	IconURL     string
	SortOrder   int
}

// NewServiceItemService creates a ServiceItemService instance.
func NewServiceItemService(gdb *gorm.DB) *ServiceItemService {
	return &ServiceItemService{db: gdb}
}

// ListAll returns all service items ordered by priority.
func (s *ServiceItemService) ListAll() ([]db.ServiceItem, error) {
	var items []db.ServiceItem
	if err := s.db.Order("sort_order desc").Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create persists a new service item.
func (s *ServiceItemService) Create(input ServiceItemInput) (*db.ServiceItem, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrServiceItemTitleMissing
	}

	item := db.ServiceItem{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		IconURL:     strings.TrimSpace(input.IconURL),
		SortOrder:   input.SortOrder,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies updates to an existing service item.
func (s *ServiceItemService) Update(id uint, input ServiceItemInput) (*db.ServiceItem, error) {
	var item db.ServiceItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceItemNotFound
		}
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrServiceItemTitleMissing
	}

	item.Title = title
	item.Description = strings.TrimSpace(input.Description)
	item.IconURL = strings.TrimSpace(input.IconURL)
	item.SortOrder = input.SortOrder

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a service item by id.
func (s *ServiceItemService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.ServiceItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceItemNotFound
	}
	return nil
}
