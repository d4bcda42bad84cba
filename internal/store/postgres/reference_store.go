package postgres

import (
	"context"

	"gorm.io/gorm"

	"filmboard/backend/internal/models"
)

// GenreStore reads genre reference data.
type GenreStore struct {
	db *gorm.DB
}

func NewGenreStore(db *gorm.DB) *GenreStore {
	return &GenreStore{db: db}
}

func (s *GenreStore) List(ctx context.Context) ([]models.Genre, error) {
	genres := []models.Genre{}
	if err := s.db.WithContext(ctx).Order("id").Find(&genres).Error; err != nil {
		return nil, translate(err)
	}
	return genres, nil
}

func (s *GenreStore) GetByID(ctx context.Context, id uint) (*models.Genre, error) {
	var genre models.Genre
	if err := s.db.WithContext(ctx).First(&genre, id).Error; err != nil {
		return nil, translate(err)
	}
	return &genre, nil
}

// MpaStore reads MPA rating reference data.
type MpaStore struct {
	db *gorm.DB
}

func NewMpaStore(db *gorm.DB) *MpaStore {
	return &MpaStore{db: db}
}

func (s *MpaStore) List(ctx context.Context) ([]models.MpaRating, error) {
	ratings := []models.MpaRating{}
	if err := s.db.WithContext(ctx).Order("id").Find(&ratings).Error; err != nil {
		return nil, translate(err)
	}
	return ratings, nil
}

func (s *MpaStore) GetByID(ctx context.Context, id uint) (*models.MpaRating, error) {
	var rating models.MpaRating
	if err := s.db.WithContext(ctx).First(&rating, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rating, nil
}
