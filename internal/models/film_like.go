package models

import "time"

// FilmLike records that a user liked a film. The composite primary key makes
// repeated likes a no-op, and the count of rows per film is its popularity.
type FilmLike struct {
	FilmID    uint `gorm:"primaryKey"`
	UserID    uint `gorm:"primaryKey"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
