package usecase

import (
	"go.uber.org/zap"

	"edu-program/internal/data/repository"
	"edu-program/pkg/token"
	"edu-program/pkg/utils"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Profile    ProfileService
	Enrollment EnrollmentService
}

func NewService(repo *repository.Repository, tokens *token.Service, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo.User, tokens, config, log),
		User:       NewUserService(repo.User, log),
		Profile:    NewProfileService(repo.User, log),
		Enrollment: NewEnrollmentService(repo, config, log),
	}
}
