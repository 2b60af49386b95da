package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"edu-program/internal/data/repository"
	"edu-program/internal/dto/request"
	"edu-program/internal/dto/response"
	"edu-program/pkg/apperr"
	"edu-program/pkg/utils"
)

// ProfileService covers the self-service operations: the target id always
// comes from the caller's verified claims.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, userID uuid.UUID, req *request.DeleteAccountRequest) error
}

type profileService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewProfileService(userRepo repository.UserRepository, log *zap.Logger) ProfileService {
	return &profileService{
		userRepo: userRepo,
		log:      log,
	}
}

func (ps *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := ps.userRepo.FindByID(ctx, userID)
	if err != nil {
		ps.log.Error("Failed to get profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.ErrInternal
	}
	if user == nil {
		return nil, apperr.New(apperr.ErrNotFound, "User not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (ps *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, apperr.New(apperr.ErrBadRequest, utils.FormatValidationErrors(errs))
	}

	fields := repository.NewUpdate()

	if req.Username != nil && *req.Username != "" {
		taken, err := ps.userRepo.UsernameTaken(ctx, *req.Username, userID)
		if err != nil {
			ps.log.Error("Failed to check username", zap.Error(err))
			return nil, apperr.ErrInternal
		}
		if taken {
			return nil, apperr.New(apperr.ErrConflict, "Username already taken")
		}
		fields.Set("username", *req.Username)
	}

	if req.Email != nil && *req.Email != "" {
		taken, err := ps.userRepo.EmailTaken(ctx, *req.Email, userID)
		if err != nil {
			ps.log.Error("Failed to check email", zap.Error(err))
			return nil, apperr.ErrInternal
		}
		if taken {
			return nil, apperr.New(apperr.ErrConflict, "Email already taken")
		}
		fields.Set("email", *req.Email)
	}

	if fields.Empty() {
		return nil, apperr.New(apperr.ErrBadRequest, "At least one field (username or email) is required")
	}

	fields.Set("updated_at", time.Now())

	if err := ps.userRepo.Update(ctx, userID, fields); err != nil {
		switch {
		case errors.Is(err, apperr.ErrConflict):
			return nil, apperr.New(apperr.ErrConflict, "Username or email already taken")
		case errors.Is(err, apperr.ErrNotFound):
			return nil, apperr.New(apperr.ErrNotFound, "User not found")
		default:
			ps.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, apperr.ErrInternal
		}
	}

	updated, err := ps.userRepo.FindByID(ctx, userID)
	if err != nil || updated == nil {
		ps.log.Error("Failed to reload profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.ErrInternal
	}

	ps.log.Info("Profile updated", zap.String("user_id", userID.String()))

	resp := response.UserToResponse(updated)
	return &resp, nil
}

// ChangePassword verifies the current password before accepting a new one.
func (ps *profileService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Change password validation failed", zap.Any("errors", errs))
		return apperr.New(apperr.ErrBadRequest, utils.FormatValidationErrors(errs))
	}

	user, err := ps.userRepo.FindByID(ctx, userID)
	if err != nil {
		ps.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return apperr.ErrInternal
	}
	if user == nil {
		return apperr.New(apperr.ErrNotFound, "User not found")
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		ps.log.Warn("Wrong current password on change", zap.String("user_id", userID.String()))
		return apperr.New(apperr.ErrUnauthorized, "Current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		ps.log.Error("Failed to hash password", zap.Error(err))
		return apperr.ErrInternal
	}

	if err := ps.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.New(apperr.ErrNotFound, "User not found")
		}
		ps.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", userID.String()))
		return apperr.ErrInternal
	}

	ps.log.Info("Password changed", zap.String("user_id", userID.String()))
	return nil
}

// DeleteAccount requires password re-confirmation before removing the row.
func (ps *profileService) DeleteAccount(ctx context.Context, userID uuid.UUID, req *request.DeleteAccountRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Delete account validation failed", zap.Any("errors", errs))
		return apperr.New(apperr.ErrBadRequest, utils.FormatValidationErrors(errs))
	}

	user, err := ps.userRepo.FindByID(ctx, userID)
	if err != nil {
		ps.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return apperr.ErrInternal
	}
	if user == nil {
		return apperr.New(apperr.ErrNotFound, "User not found")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		ps.log.Warn("Wrong password on account delete", zap.String("user_id", userID.String()))
		return apperr.New(apperr.ErrUnauthorized, "Password is incorrect")
	}

	if err := ps.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.New(apperr.ErrNotFound, "User not found")
		}
		ps.log.Error("Failed to delete account", zap.Error(err), zap.String("user_id", userID.String()))
		return apperr.ErrInternal
	}

	ps.log.Info("Account deleted", zap.String("user_id", userID.String()))
	return nil
}
