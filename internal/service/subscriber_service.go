package service

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/mutantsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrEmailInvalid       = errors.New("email address is invalid")
	ErrAlreadySubscribed  = errors.New("email address is already subscribed")
)

// SubscriberService handles newsletter signups.
type SubscriberService struct {
	db *gorm.DB
}

// NewSubscriberService creates a SubscriberService instance.
func NewSubscriberService(gdb *gorm.DB) *SubscriberService {
	return &SubscriberService{db: gdb}
}

// Subscribe stores a new signup. Addresses are lowercased before the
// uniqueness check so the same mailbox cannot subscribe twice.
func (s *SubscriberService) Subscribe(email string) (*db.Subscriber, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, ErrEmailInvalid
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return nil, ErrEmailInvalid
	}

	subscriber := db.Subscriber{Email: normalized}
	if err := s.db.Create(&subscriber).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}
	return &subscriber, nil
}

// List returns all subscribers, newest first.
func (s *SubscriberService) List() ([]db.Subscriber, error) {
	var subscribers []db.Subscriber
	if err := s.db.Order("created_at desc").Find(&subscribers).Error; err != nil {
		return nil, err
	}
	return subscribers, nil
}

// Count returns the number of subscribers.
func (s *SubscriberService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&db.Subscriber{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes a subscriber by id.
func (s *SubscriberService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.Subscriber{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriberNotFound
	}
	return nil
}
