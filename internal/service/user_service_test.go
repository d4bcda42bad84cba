package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmboard/backend/internal/apperr"
	"filmboard/backend/internal/models"
	"filmboard/backend/internal/store/memory"
)

func newUserService() *UserService {
	return NewUserService(memory.New().Users())
}

func newTestUser(login string) *models.User {
	return &models.User{
		Email:    login + "@example.com",
		Login:    login,
		Birthday: models.NewDate(1990, time.March, 14),
	}
}

func mustCreateUser(t *testing.T, svc *UserService, login string) *models.User {
	t.Helper()
	user := newTestUser(login)
	require.NoError(t, svc.Create(context.Background(), user))
	return user
}

func TestUserService_CreateDefaultsNameToLogin(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user := newTestUser("ada")
	user.Name = "  "
	require.NoError(t, svc.Create(ctx, user))

	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "ada", user.Name)

	stored, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", stored.Name)
}

func TestUserService_CreateKeepsExplicitName(t *testing.T) {
	svc := newUserService()

	user := newTestUser("ada")
	user.Name = "Ada Lovelace"
	require.NoError(t, svc.Create(context.Background(), user))

	assert.Equal(t, "Ada Lovelace", user.Name)
}

func TestUserService_CreateRejectsInvalidUser(t *testing.T) {
	svc := newUserService()

	user := newTestUser("ada")
	user.Email = "not-an-email"
	err := svc.Create(context.Background(), user)

	assert.True(t, apperr.IsValidation(err))

	users, listErr := svc.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, users)
}

func TestUserService_UpdateReappliesNameDefault(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()
	user := mustCreateUser(t, svc, "ada")

	user.Name = ""
	user.Login = "countess"
	require.NoError(t, svc.Update(ctx, user))

	stored, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "countess", stored.Name)
}

func TestUserService_UpdateUnknownUser(t *testing.T) {
	svc := newUserService()

	user := newTestUser("ghost")
	user.ID = 42
	err := svc.Update(context.Background(), user)

	assert.True(t, apperr.IsNotFound(err))
}

func TestUserService_FriendshipIsSymmetric(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()
	ada := mustCreateUser(t, svc, "ada")
	bob := mustCreateUser(t, svc, "bob")

	require.NoError(t, svc.AddFriend(ctx, ada.ID, bob.ID))

	adaFriends, err := svc.ListFriends(ctx, ada.ID)
	require.NoError(t, err)
	bobFriends, err := svc.ListFriends(ctx, bob.ID)
	require.NoError(t, err)

	require.Len(t, adaFriends, 1)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, bob.ID, adaFriends[0].ID)
	assert.Equal(t, ada.ID, bobFriends[0].ID)
}

func TestUserService_AddFriendTwiceIsNoOp(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()
	ada := mustCreateUser(t, svc, "ada")
	bob := mustCreateUser(t, svc, "bob")

	require.NoError(t, svc.AddFriend(ctx, ada.ID, bob.ID))
	require.NoError(t, svc.AddFriend(ctx, ada.ID, bob.ID))

	friends, err := svc.ListFriends(ctx, ada.ID)
	require.NoError(t, err)
	assert.Len(t, friends, 1)
}

func TestUserService_DeleteFriendRemovesBothDirections(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()
	ada := mustCreateUser(t, svc, "ada")
	bob := mustCreateUser(t, svc, "bob")
	require.NoError(t, svc.AddFriend(ctx, ada.ID, bob.ID))

	require.NoError(t, svc.DeleteFriend(ctx, ada.ID, bob.ID))

	adaFriends, err := svc.ListFriends(ctx, ada.ID)
	require.NoError(t, err)
	bobFriends, err := svc.ListFriends(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, adaFriends)
	assert.Empty(t, bobFriends)

	err = svc.DeleteFriend(ctx, ada.ID, bob.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUserService_ListFriendsUnknownUser(t *testing.T) {
	svc := newUserService()

	_, err := svc.ListFriends(context.Background(), 99)
	assert.True(t, apperr.IsNotFound(err))
}

func TestUserService_ListFriendsEmptyIsNotNil(t *testing.T) {
	svc := newUserService()
	ada := mustCreateUser(t, svc, "ada")

	friends, err := svc.ListFriends(context.Background(), ada.ID)
	require.NoError(t, err)
	assert.NotNil(t, friends)
	assert.Empty(t, friends)
}

func TestUserService_ListCommonFriends(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()
	ada := mustCreateUser(t, svc, "ada")
	bob := mustCreateUser(t, svc, "bob")
	carol := mustCreateUser(t, svc, "carol")
	dave := mustCreateUser(t, svc, "dave")

	require.NoError(t, svc.AddFriend(ctx, ada.ID, carol.ID))
	require.NoError(t, svc.AddFriend(ctx, ada.ID, dave.ID))
	require.NoError(t, svc.AddFriend(ctx, bob.ID, carol.ID))

	common, err := svc.ListCommonFriends(ctx, ada.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, common, 1)
	assert.Equal(t, carol.ID, common[0].ID)
}

func TestUserService_ListCommonFriendsNoneIsEmptyList(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()
	ada := mustCreateUser(t, svc, "ada")
	bob := mustCreateUser(t, svc, "bob")

	common, err := svc.ListCommonFriends(ctx, ada.ID, bob.ID)
	require.NoError(t, err)
	assert.NotNil(t, common)
	assert.Empty(t, common)
}

func TestUserService_ListCommonFriendsUnknownUser(t *testing.T) {
	svc := newUserService()
	ada := mustCreateUser(t, svc, "ada")

	_, err := svc.ListCommonFriends(context.Background(), ada.ID, 99)
	assert.True(t, apperr.IsNotFound(err))
}
