package models

// MpaRating is immutable reference data for the MPA content rating
// (G, PG, PG-13, R, NC-17). Each film references exactly one rating.
type MpaRating struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;unique;not null"`
}
