package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"edu-program/internal/data/entity"
	"edu-program/internal/dto/request"
	"edu-program/internal/mocks"
	"edu-program/pkg/apperr"
	"edu-program/pkg/utils"
)

func profileUser(t *testing.T, id uuid.UUID, password string) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	return &entity.User{
		Base:         entity.Base{ID: id},
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: hash,
		Role:         entity.RoleLearner,
		IsActive:     true,
	}
}

func TestGetProfile(t *testing.T) {
	id := uuid.New()
	userRepo := new(mocks.UserRepository)
	svc := NewProfileService(userRepo, zap.NewNop())

	userRepo.On("FindByID", mock.Anything, id).Return(profileUser(t, id, "secret123"), nil)

	resp, err := svc.GetProfile(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id.String(), resp.ID)
	assert.Equal(t, "jdoe", resp.Username)
}

func TestGetProfileNotFound(t *testing.T) {
	id := uuid.New()
	userRepo := new(mocks.UserRepository)
	svc := NewProfileService(userRepo, zap.NewNop())

	userRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	resp, err := svc.GetProfile(context.Background(), id)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, resp)
}

func TestUpdateProfile(t *testing.T) {
	id := uuid.New()
	userRepo := new(mocks.UserRepository)
	svc := NewProfileService(userRepo, zap.NewNop())

	userRepo.On("EmailTaken", mock.Anything, "new@example.com", id).Return(false, nil)
	userRepo.On("Update", mock.Anything, id, mock.AnythingOfType("*repository.UpdateBuilder")).Return(nil)
	userRepo.On("FindByID", mock.Anything, id).Return(profileUser(t, id, "secret123"), nil)

	resp, err := svc.UpdateProfile(context.Background(), id, &request.UpdateProfileRequest{
		Email: strptr("new@example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, id.String(), resp.ID)
}

func TestUpdateProfileNoFields(t *testing.T) {
	id := uuid.New()
	userRepo := new(mocks.UserRepository)
	svc := NewProfileService(userRepo, zap.NewNop())

	resp, err := svc.UpdateProfile(context.Background(), id, &request.UpdateProfileRequest{})

	assert.ErrorIs(t, err, apperr.ErrBadRequest)
	assert.EqualError(t, err, "At least one field (username or email) is required")
	assert.Nil(t, resp)
	userRepo.AssertNotCalled(t, "Update")
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	id := uuid.New()
	userRepo := new(mocks.UserRepository)
	svc := NewProfileService(userRepo, zap.NewNop())

	userRepo.On("EmailTaken", mock.Anything, "taken@example.com", id).Return(true, nil)

	resp, err := svc.UpdateProfile(context.Background(), id, &request.UpdateProfileRequest{
		Email: strptr("taken@example.com"),
	})

	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.EqualError(t, err, "Email already taken")
	assert.Nil(t, resp)
	userRepo.AssertNotCalled(t, "Update")
}

func TestChangePassword(t *testing.T) {
	id := uuid.New()
	userRepo := new(mocks.UserRepository)
	svc := NewProfileService(userRepo, zap.NewNop())

	var newHash string
	userRepo.On("FindByID", mock.Anything, id).Return(profileUser(t, id, "secret123"), nil)
	userRepo.On("UpdatePassword", mock.Anything, id, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { newHash = args.Get(2).(string) }).
		Return(nil)

	err := svc.ChangePassword(context.Background(), id, &request.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	})

	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("newsecret", newHash))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	id := uuid.New()
	userRepo := new(mocks.UserRepository)
	svc := NewProfileService(userRepo, zap.NewNop())

	userRepo.On("FindByID", mock.Anything, id).Return(profileUser(t, id, "secret123"), nil)

	err := svc.ChangePassword(context.Background(), id, &request.ChangePasswordRequest{
		CurrentPassword: "wrong-pass",
		NewPassword:     "newsecret",
	})

	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	assert.EqualError(t, err, "Current password is incorrect")
	userRepo.AssertNotCalled(t, "UpdatePassword")
}

func TestDeleteAccount(t *testing.T) {
	id := uuid.New()
	userRepo := new(mocks.UserRepository)
	svc := NewProfileService(userRepo, zap.NewNop())

	userRepo.On("FindByID", mock.Anything, id).Return(profileUser(t, id, "secret123"), nil)
	userRepo.On("Delete", mock.Anything, id).Return(nil)

	err := svc.DeleteAccount(context.Background(), id, &request.DeleteAccountRequest{
		Password: "secret123",
	})

	require.NoError(t, err)
	userRepo.AssertCalled(t, "Delete", mock.Anything, id)
}

func TestDeleteAccountWrongPassword(t *testing.T) {
	id := uuid.New()
	userRepo := new(mocks.UserRepository)
	svc := NewProfileService(userRepo, zap.NewNop())

	userRepo.On("FindByID", mock.Anything, id).Return(profileUser(t, id, "secret123"), nil)

	err := svc.DeleteAccount(context.Background(), id, &request.DeleteAccountRequest{
		Password: "wrong-pass",
	})

	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	assert.EqualError(t, err, "Password is incorrect")
	userRepo.AssertNotCalled(t, "Delete")
}
