package db

import (
	"errors"

	"gorm.io/gorm"
)

// Site setting input types understood by the admin settings screen.
const (
	SettingInputText     = "text"
	SettingInputTextarea = "textarea"
	SettingInputImage    = "image"
	SettingInputURL      = "url"
)

// Well-known setting keys consumed by the public site.
const (
	SettingKeyContactEmail = "contact_email"
	SettingKeyPhoneNumber  = "phone_number"
	SettingKeyMarqueeText  = "marquee_text"
	SettingKeyAddress      = "address"
)

// SiteSetting is a global key/value pair plus the presentation metadata the
// admin form needs to render an input for it. Values are stored raw; no type
// coercion happens even for url or image inputs.
type SiteSetting struct {
	gorm.Model
	Key         string `gorm:"size:100;uniqueIndex;not null"`
	Value       string `gorm:"type:text"`
	Label       string `gorm:"size:120"`
	Description string `gorm:"size:255"`
	InputType   string `gorm:"size:20;default:text"`
}

// TableName keeps the store collection name explicit.
func (SiteSetting) TableName() string {
	return "site_settings"
}

// SeedDefaultSettings inserts the settings rows the site expects, leaving
// existing rows untouched. Settings are seeded once and only mutated through
// the admin screen afterwards.
func SeedDefaultSettings(gdb *gorm.DB) error {
	defaults := []SiteSetting{
		{Key: SettingKeyContactEmail, Label: "Contact email", Description: "Shown in the footer and used as the contact form recipient", InputType: SettingInputText},
		{Key: SettingKeyPhoneNumber, Label: "Phone number", Description: "Shown in the footer and contact section", InputType: SettingInputText},
		{Key: SettingKeyMarqueeText, Label: "Marquee text", Description: "Scrolling banner text on the home page", InputType: SettingInputTextarea},
		{Key: SettingKeyAddress, Label: "Address", Description: "Office address shown on the contact page", InputType: SettingInputTextarea},
	}

	for _, setting := range defaults {
		var existing SiteSetting
		err := gdb.Where("key = ?", setting.Key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := gdb.Create(&setting).Error; err != nil {
			return err
		}
	}

	return nil
}
