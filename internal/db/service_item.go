package db

import "gorm.io/gorm"

// ServiceItem is one entry of the agency's service catalog.
type ServiceItem struct {
	gorm.Model
	Title       string `gorm:"size:160;not null"`
	Description string `gorm:"type:text"`
	IconURL     string `gorm:"size:500"`
	SortOrder   int    `gorm:"default:0;index"`
}

// TableName maps the model onto the services collection.
func (ServiceItem) TableName() string {
	return "services"
}
