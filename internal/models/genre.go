package models

// Genre is immutable reference data describing a film category
// (e.g., "Comedy", "Drama"). Films reference genres many-to-many.
type Genre struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;unique;not null"`
}
