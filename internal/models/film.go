package models

import "time"

// Film represents a film in the catalogue.
type Film struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:200"`
	ReleaseDate Date   `gorm:"type:date;not null"`
	Duration    int    `gorm:"not null"` // minutes
	MpaID       uint   `gorm:"not null;index"`

	Mpa    MpaRating  `gorm:"foreignKey:MpaID"`
	Genres []Genre    `gorm:"many2many:film_genres;constraint:OnDelete:CASCADE"`
	Likes  []FilmLike `gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LikeUserIDs returns the ids of the users who liked the film.
func (f Film) LikeUserIDs() []uint {
	ids := make([]uint, 0, len(f.Likes))
	for _, l := range f.Likes {
		ids = append(ids, l.UserID)
	}
	return ids
}
