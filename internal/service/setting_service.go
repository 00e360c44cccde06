package service

import (
	"errors"
	"log"
	"strings"

	"github.com/mutantsite/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSettingKeyMissing reports an update without a setting key.
var ErrSettingKeyMissing = errors.New("setting key is required")

// SettingService reads and updates the global site settings.
type SettingService struct {
	db *gorm.DB
}

// NewSettingService creates a SettingService instance.
func NewSettingService(gdb *gorm.DB) *SettingService {
	return &SettingService{db: gdb}
}

// Resolve folds every stored setting into a flat key/value mapping. Values
// are raw strings. A query failure is logged and yields an empty mapping;
// callers substitute their own literal defaults through Lookup.
func (s *SettingService) Resolve() map[string]string {
	resolved := make(map[string]string)

	var settings []db.SiteSetting
	if err := s.db.Find(&settings).Error; err != nil {
		log.Printf("resolve site settings: %v", err)
		return resolved
	}

	for _, setting := range settings {
		resolved[setting.Key] = setting.Value
	}

	return resolved
}

// Lookup returns the value of key from a resolved settings mapping, or
// fallback when the key is absent or blank. All consumers go through this
// accessor instead of repeating fallback literals inline.
func Lookup(settings map[string]string, key, fallback string) string {
	if value, ok := settings[key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

// List returns all settings with their presentation metadata for the admin
// settings screen, ordered by key.
func (s *SettingService) List() ([]db.SiteSetting, error) {
	var settings []db.SiteSetting
	if err := s.db.Order("key asc").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// Update upserts one setting value by key. The presentation metadata of
// seeded rows is preserved; a previously unknown key is created as a plain
// text setting.
func (s *SettingService) Update(key, value string) error {
	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return ErrSettingKeyMissing
	}

	setting := db.SiteSetting{Key: trimmedKey, Value: value, InputType: db.SettingInputText}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return err
	}
	return nil
}
