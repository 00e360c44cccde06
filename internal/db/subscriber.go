package db

import "gorm.io/gorm"

// Subscriber is one newsletter signup.
type Subscriber struct {
	gorm.Model
	Email string `gorm:"size:255;uniqueIndex;not null"`
}
