package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"filmboard/backend/internal/apperr"
	"filmboard/backend/internal/models"
)

// UserStore persists users and the symmetric friendship relation.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *UserStore) Update(ctx context.Context, user *models.User) error {
	updates := map[string]any{
		"email":    user.Email,
		"login":    user.Login,
		"name":     user.Name,
		"birthday": user.Birthday,
	}
	result := s.db.WithContext(ctx).Model(&models.User{ID: user.ID}).Updates(updates)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFoundf("user %d", user.ID)
	}
	var loaded models.User
	if err := s.db.WithContext(ctx).First(&loaded, user.ID).Error; err != nil {
		return translate(err)
	}
	*user = loaded
	return nil
}

// Delete removes the user; friendship and like rows go with them through
// the ON DELETE CASCADE constraints.
func (s *UserStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFoundf("user %d", id)
	}
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

// AddFriend writes both directed rows in one transaction; the foreign keys
// reject unknown user ids, which surfaces as the not-found class.
func (s *UserStore) AddFriend(ctx context.Context, userID, friendID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		edges := []models.Friendship{
			{UserID: userID, FriendID: friendID},
			{UserID: friendID, FriendID: userID},
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Omit("User", "Friend").
			Create(&edges).Error
	})
	return translate(err)
}

// DeleteFriend removes both directed rows in one transaction. The forward
// edge must exist; the reverse row is removed with it.
func (s *UserStore) DeleteFriend(ctx context.Context, userID, friendID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND friend_id = ?", userID, friendID).
			Delete(&models.Friendship{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.NotFoundf("user %d is not a friend of user %d", friendID, userID)
		}
		return tx.Where("user_id = ? AND friend_id = ?", friendID, userID).
			Delete(&models.Friendship{}).Error
	})
	return translate(err)
}

func (s *UserStore) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	friends := []models.User{}
	err := s.db.WithContext(ctx).
		Joins("JOIN friendships ON friendships.friend_id = users.id").
		Where("friendships.user_id = ?", userID).
		Order("friendships.created_at, users.id").
		Find(&friends).Error
	if err != nil {
		return nil, translate(err)
	}
	return friends, nil
}
