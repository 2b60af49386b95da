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
	"edu-program/pkg/token"
	"edu-program/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens *token.Service,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		config:   config,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, apperr.New(apperr.ErrBadRequest, utils.FormatValidationErrors(errs))
	}

	// Role defaults to learner on self-registration
	role := entity.RoleLearner
	if req.Role != nil {
		role = entity.Role(*req.Role)
		if !role.Valid() {
			return nil, apperr.New(apperr.ErrBadRequest, "Invalid role. Use: admin, learner, or instructor")
		}
	}

	// Pre-checks are an optimization; the unique constraints are the backstop
	taken, err := s.userRepo.UsernameTaken(ctx, req.Username, uuid.Nil)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, apperr.ErrInternal
	}
	if !taken {
		taken, err = s.userRepo.EmailTaken(ctx, req.Email, uuid.Nil)
		if err != nil {
			s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
			return nil, apperr.ErrInternal
		}
	}
	if taken {
		return nil, apperr.New(apperr.ErrConflict, "Username or email already exists")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
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

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.New(apperr.ErrConflict, "Username or email already exists")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.ErrInternal
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, apperr.New(apperr.ErrBadRequest, utils.FormatValidationErrors(errs))
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.ErrInternal
	}

	// Unknown email, wrong password, and (when gated) an inactive account
	// all yield the same uniform failure.
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, apperr.New(apperr.ErrUnauthorized, "Invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, apperr.New(apperr.ErrUnauthorized, "Invalid credentials")
	}

	if s.config.Auth.RequireActive && !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, apperr.New(apperr.ErrUnauthorized, "Invalid credentials")
	}

	accessToken, err := s.tokens.Issue(user)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.ErrInternal
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.AuthResponse{
		AccessToken: accessToken,
		User:        response.UserToResponse(user),
	}, nil
}
