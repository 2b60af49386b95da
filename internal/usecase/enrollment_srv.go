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

type EnrollmentService interface {
	Enroll(ctx context.Context, req *request.EnrollRequest) (*response.EnrollmentResponse, error)
	Cancel(ctx context.Context, req *request.CancelEnrollmentRequest) error
	GetStatus(ctx context.Context, userID, programID string) (*response.EnrollmentStatusResponse, error)
	ListUserEnrollments(ctx context.Context, userID string) (*response.UserEnrollmentsResponse, error)
}

type enrollmentService struct {
	repo   *repository.Repository // user, program, and enrollment stores
	config *utils.Config
	log    *zap.Logger
}

func NewEnrollmentService(repo *repository.Repository, config *utils.Config, log *zap.Logger) EnrollmentService {
	return &enrollmentService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

// Enroll validates both referenced entities exist, then that the pair is
// free, then inserts. The pre-checks are serial and unlocked; the unique
// constraint catches the race and it is reported as a conflict, not a fault.
func (s *enrollmentService) Enroll(ctx context.Context, req *request.EnrollRequest) (*response.EnrollmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Enroll validation failed", zap.Any("errors", errs))
		return nil, apperr.New(apperr.ErrBadRequest, utils.FormatValidationErrors(errs))
	}

	userID, programID, err := parsePair(req.UserID, req.ProgramID)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to check user", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, apperr.ErrInternal
	}
	if user == nil {
		return nil, apperr.New(apperr.ErrNotFound, "User not found")
	}

	program, err := s.repo.Program.FindByID(ctx, programID)
	if err != nil {
		s.log.Error("Failed to check program", zap.Error(err), zap.String("program_id", req.ProgramID))
		return nil, apperr.ErrInternal
	}
	if program == nil {
		return nil, apperr.New(apperr.ErrNotFound, "Program not found")
	}

	existing, err := s.repo.Enrollment.FindByPair(ctx, userID, programID)
	if err != nil {
		s.log.Error("Failed to check enrollment", zap.Error(err))
		return nil, apperr.ErrInternal
	}
	if existing != nil {
		return nil, apperr.New(apperr.ErrConflict, "User is already enrolled in this program")
	}

	enrollment := &entity.Enrollment{
		ID:         uuid.New(),
		UserID:     userID,
		ProgramID:  programID,
		EnrolledAt: time.Now(),
	}

	if err := s.repo.Enrollment.Create(ctx, enrollment); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.New(apperr.ErrConflict, "User is already enrolled in this program")
		}
		s.log.Error("Failed to create enrollment", zap.Error(err))
		return nil, apperr.ErrInternal
	}

	created, err := s.repo.Enrollment.FindByPair(ctx, userID, programID)
	if err != nil || created == nil {
		s.log.Error("Failed to reload enrollment", zap.Error(err))
		return nil, apperr.ErrInternal
	}

	s.log.Info("User enrolled",
		zap.String("user_id", req.UserID),
		zap.String("program_id", req.ProgramID))

	resp := response.EnrollmentToResponse(created, s.config.Upload.BaseURL)
	return &resp, nil
}

func (s *enrollmentService) Cancel(ctx context.Context, req *request.CancelEnrollmentRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Cancel enrollment validation failed", zap.Any("errors", errs))
		return apperr.New(apperr.ErrBadRequest, utils.FormatValidationErrors(errs))
	}

	userID, programID, err := parsePair(req.UserID, req.ProgramID)
	if err != nil {
		return err
	}

	if err := s.repo.Enrollment.Delete(ctx, userID, programID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.New(apperr.ErrNotFound, "Enrollment not found")
		}
		s.log.Error("Failed to cancel enrollment", zap.Error(err))
		return apperr.ErrInternal
	}

	s.log.Info("Enrollment canceled",
		zap.String("user_id", req.UserID),
		zap.String("program_id", req.ProgramID))

	return nil
}

func (s *enrollmentService) GetStatus(ctx context.Context, userID, programID string) (*response.EnrollmentStatusResponse, error) {
	uid, pid, err := parsePair(userID, programID)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.repo.Enrollment.FindByPair(ctx, uid, pid)
	if err != nil {
		s.log.Error("Failed to check enrollment status", zap.Error(err))
		return nil, apperr.ErrInternal
	}

	if enrollment == nil {
		return &response.EnrollmentStatusResponse{
			IsEnrolled: false,
			Message:    "User is not enrolled in this program",
		}, nil
	}

	resp := response.EnrollmentToResponse(enrollment, s.config.Upload.BaseURL)
	return &response.EnrollmentStatusResponse{
		IsEnrolled: true,
		Enrollment: &resp,
	}, nil
}

func (s *enrollmentService) ListUserEnrollments(ctx context.Context, userID string) (*response.UserEnrollmentsResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.New(apperr.ErrBadRequest, "Invalid user ID")
	}

	enrollments, err := s.repo.Enrollment.FindAllByUser(ctx, uid)
	if err != nil {
		s.log.Error("Failed to list enrollments", zap.Error(err), zap.String("user_id", userID))
		return nil, apperr.ErrInternal
	}

	responses := make([]response.EnrollmentResponse, len(enrollments))
	for i, e := range enrollments {
		responses[i] = response.EnrollmentToResponse(e, s.config.Upload.BaseURL)
	}

	return &response.UserEnrollmentsResponse{
		UserID:           userID,
		TotalEnrollments: len(responses),
		Enrollments:      responses,
	}, nil
}

func parsePair(userID, programID string) (uuid.UUID, uuid.UUID, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, apperr.New(apperr.ErrBadRequest, "Invalid user ID")
	}
	pid, err := uuid.Parse(programID)
	if err != nil {
		return uuid.Nil, uuid.Nil, apperr.New(apperr.ErrBadRequest, "Invalid program ID")
	}
	return uid, pid, nil
}
