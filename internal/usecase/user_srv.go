package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"edu-program/internal/data/entity"
	"edu-program/internal/data/repository"
	"edu-program/internal/dto/request"
	"edu-program/internal/dto/response"
	"edu-program/pkg/apperr"
	"edu-program/pkg/utils"
)

// UserService covers the admin-scoped user operations: the target id always
// comes from the request, never from the caller's claims.
type UserService interface {
	ListUsers(ctx context.Context) ([]response.UserResponse, error)
	GetUser(ctx context.Context, id string) (*response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, req *request.UpdateUserRequest) (*response.UserResponse, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
	DeleteUser(ctx context.Context, req *request.DeleteUserRequest) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (us *userService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		us.log.Error("Failed to get all users", zap.Error(err))
		return nil, apperr.ErrInternal
	}

	responses := make([]response.UserResponse, len(users))
	for i, user := range users {
		responses[i] = response.UserToResponse(user)
	}

	return responses, nil
}

func (us *userService) GetUser(ctx context.Context, id string) (*response.UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.New(apperr.ErrBadRequest, "Invalid user ID")
	}

	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", id))
		return nil, apperr.ErrInternal
	}
	if user == nil {
		return nil, apperr.New(apperr.ErrNotFound, "User not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, apperr.New(apperr.ErrBadRequest, utils.FormatValidationErrors(errs))
	}

	role := entity.RoleLearner
	if req.Role != nil {
		role = entity.Role(*req.Role)
		if !role.Valid() {
			return nil, apperr.New(apperr.ErrBadRequest, "Invalid role. Use: admin, learner, or instructor")
		}
	}

	taken, err := us.userRepo.UsernameTaken(ctx, req.Username, uuid.Nil)
	if err != nil {
		us.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, apperr.ErrInternal
	}
	if !taken {
		taken, err = us.userRepo.EmailTaken(ctx, req.Email, uuid.Nil)
		if err != nil {
			us.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
			return nil, apperr.ErrInternal
		}
	}
	if taken {
		return nil, apperr.New(apperr.ErrConflict, "Username or email already exists")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.ErrInternal
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.New(apperr.ErrConflict, "Username or email already exists")
		}
		us.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.ErrInternal
	}

	us.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateUser(ctx context.Context, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, apperr.New(apperr.ErrBadRequest, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, apperr.New(apperr.ErrBadRequest, "Invalid user ID")
	}

	// Existence check precedes mutation
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", req.ID))
		return nil, apperr.ErrInternal
	}
	if user == nil {
		return nil, apperr.New(apperr.ErrNotFound, "User not found")
	}

	fields := repository.NewUpdate()

	if req.Username != nil && *req.Username != "" {
		taken, err := us.userRepo.UsernameTaken(ctx, *req.Username, userID)
		if err != nil {
			us.log.Error("Failed to check username", zap.Error(err))
			return nil, apperr.ErrInternal
		}
		if taken {
			return nil, apperr.New(apperr.ErrConflict, "Username already taken")
		}
		fields.Set("username", *req.Username)
	}

	if req.Email != nil && *req.Email != "" {
		taken, err := us.userRepo.EmailTaken(ctx, *req.Email, userID)
		if err != nil {
			us.log.Error("Failed to check email", zap.Error(err))
			return nil, apperr.ErrInternal
		}
		if taken {
			return nil, apperr.New(apperr.ErrConflict, "Email already taken")
		}
		fields.Set("email", *req.Email)
	}

	if req.Role != nil {
		role := entity.Role(*req.Role)
		if !role.Valid() {
			return nil, apperr.New(apperr.ErrBadRequest, "Invalid role")
		}
		fields.Set("role", role)
	}

	if req.IsActive != nil {
		fields.Set("is_active", *req.IsActive)
	}

	if fields.Empty() {
		return nil, apperr.New(apperr.ErrBadRequest, "No fields to update")
	}

	fields.Set("updated_at", time.Now())

	if err := us.userRepo.Update(ctx, userID, fields); err != nil {
		switch {
		case errors.Is(err, apperr.ErrConflict):
			return nil, apperr.New(apperr.ErrConflict, "Username or email already taken")
		case errors.Is(err, apperr.ErrNotFound):
			return nil, apperr.New(apperr.ErrNotFound, "User not found")
		default:
			us.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", req.ID))
			return nil, apperr.ErrInternal
		}
	}

	updated, err := us.userRepo.FindByID(ctx, userID)
	if err != nil || updated == nil {
		us.log.Error("Failed to reload updated user", zap.Error(err), zap.String("user_id", req.ID))
		return nil, apperr.ErrInternal
	}

	us.log.Info("User updated", zap.String("user_id", req.ID))

	resp := response.UserToResponse(updated)
	return &resp, nil
}

// ResetPassword is the admin override path: no current-password check.
func (us *userService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Reset password validation failed", zap.Any("errors", errs))
		return apperr.New(apperr.ErrBadRequest, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.ID)
	if err != nil {
		return apperr.New(apperr.ErrBadRequest, "Invalid user ID")
	}

	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", req.ID))
		return apperr.ErrInternal
	}
	if user == nil {
		return apperr.New(apperr.ErrNotFound, "User not found")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return apperr.ErrInternal
	}

	if err := us.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.New(apperr.ErrNotFound, "User not found")
		}
		us.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", req.ID))
		return apperr.ErrInternal
	}

	us.log.Info("Password reset by admin", zap.String("user_id", req.ID))
	return nil
}

func (us *userService) DeleteUser(ctx context.Context, req *request.DeleteUserRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Delete user validation failed", zap.Any("errors", errs))
		return apperr.New(apperr.ErrBadRequest, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.ID)
	if err != nil {
		return apperr.New(apperr.ErrBadRequest, "Invalid user ID")
	}

	if err := us.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.New(apperr.ErrNotFound, "User not found")
		}
		us.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", req.ID))
		return apperr.ErrInternal
	}

	return nil
}
