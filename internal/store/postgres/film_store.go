package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"filmboard/backend/internal/apperr"
	"filmboard/backend/internal/models"
)

// FilmStore persists films and their like/genre edges in the database.
type FilmStore struct {
	db *gorm.DB
}

func NewFilmStore(db *gorm.DB) *FilmStore {
	return &FilmStore{db: db}
}

// withAssociations preloads the film's rating, its genres in ascending-id
// order, and its like edges.
func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Mpa").
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.id") }).
		Preload("Likes")
}

func (s *FilmStore) Create(ctx context.Context, film *models.Film) error {
	// Omit("Genres.*") writes the join rows without touching the genre
	// reference rows themselves.
	if err := s.db.WithContext(ctx).Omit("Genres.*", "Mpa", "Likes").Create(film).Error; err != nil {
		return translate(err)
	}
	return s.reload(ctx, film)
}

func (s *FilmStore) Update(ctx context.Context, film *models.Film) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Film
		if err := tx.First(&existing, film.ID).Error; err != nil {
			return err
		}
		updates := map[string]any{
			"name":         film.Name,
			"description":  film.Description,
			"release_date": film.ReleaseDate,
			"duration":     film.Duration,
			"mpa_id":       film.MpaID,
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}
		genres := film.Genres
		return tx.Model(&existing).Association("Genres").Replace(&genres)
	})
	if err != nil {
		return translate(err)
	}
	return s.reload(ctx, film)
}

func (s *FilmStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Select("Genres", "Likes").Delete(&models.Film{ID: id})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFoundf("film %d", id)
	}
	return nil
}

func (s *FilmStore) GetByID(ctx context.Context, id uint) (*models.Film, error) {
	var film models.Film
	if err := withAssociations(s.db.WithContext(ctx)).First(&film, id).Error; err != nil {
		return nil, translate(err)
	}
	return &film, nil
}

func (s *FilmStore) List(ctx context.Context) ([]models.Film, error) {
	films := []models.Film{}
	err := withAssociations(s.db.WithContext(ctx)).Order("films.id").Find(&films).Error
	if err != nil {
		return nil, translate(err)
	}
	return films, nil
}

func (s *FilmStore) AddLike(ctx context.Context, filmID, userID uint) error {
	like := models.FilmLike{FilmID: filmID, UserID: userID}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("User").
		Create(&like).Error
	return translate(err)
}

func (s *FilmStore) DeleteLike(ctx context.Context, filmID, userID uint) error {
	result := s.db.WithContext(ctx).
		Where("film_id = ? AND user_id = ?", filmID, userID).
		Delete(&models.FilmLike{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFoundf("like by user %d on film %d", userID, filmID)
	}
	return nil
}

func (s *FilmStore) ListPopular(ctx context.Context, count int) ([]models.Film, error) {
	films := []models.Film{}
	err := withAssociations(s.db.WithContext(ctx)).
		Model(&models.Film{}).
		Joins("LEFT JOIN film_likes ON film_likes.film_id = films.id").
		Group("films.id").
		Order("COUNT(film_likes.user_id) DESC, films.id ASC").
		Limit(count).
		Find(&films).Error
	if err != nil {
		return nil, translate(err)
	}
	return films, nil
}

func (s *FilmStore) AddGenre(ctx context.Context, filmID, genreID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var film models.Film
		if err := tx.First(&film, filmID).Error; err != nil {
			return err
		}
		var genre models.Genre
		if err := tx.First(&genre, genreID).Error; err != nil {
			return err
		}
		return tx.Model(&film).Association("Genres").Append(&genre)
	})
	return translate(err)
}

func (s *FilmStore) DeleteGenre(ctx context.Context, filmID, genreID uint) error {
	result := s.db.WithContext(ctx).
		Exec("DELETE FROM film_genres WHERE film_id = ? AND genre_id = ?", filmID, genreID)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFoundf("genre %d on film %d", genreID, filmID)
	}
	return nil
}

// reload refreshes the caller's film with the stored row and associations.
func (s *FilmStore) reload(ctx context.Context, film *models.Film) error {
	loaded, err := s.GetByID(ctx, film.ID)
	if err != nil {
		return err
	}
	*film = *loaded
	return nil
}
