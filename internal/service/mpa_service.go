package service

import (
	"context"

	"filmboard/backend/internal/models"
	"filmboard/backend/internal/store"
)

// MpaService reads MPA rating reference data.
type MpaService struct {
	mpa store.MpaStore
}

func NewMpaService(mpa store.MpaStore) *MpaService {
	return &MpaService{mpa: mpa}
}

func (s *MpaService) List(ctx context.Context) ([]models.MpaRating, error) {
	return s.mpa.List(ctx)
}

func (s *MpaService) GetByID(ctx context.Context, id uint) (*models.MpaRating, error) {
	return s.mpa.GetByID(ctx, id)
}
