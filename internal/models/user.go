package models

import "time"

// User represents a registered user.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"size:255;not null"`
	Login    string `gorm:"size:255;unique;not null"`
	Name     string `gorm:"size:255"` // defaults to Login when left empty
	Birthday Date   `gorm:"type:date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
