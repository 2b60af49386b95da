package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"edu-program/internal/data/entity"
)

type EnrollmentRepository struct{ mock.Mock }

func (m *EnrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	return m.Called(ctx, enrollment).Error(0)
}

func (m *EnrollmentRepository) FindByPair(ctx context.Context, userID, programID uuid.UUID) (*entity.UserEnrollment, error) {
	args := m.Called(ctx, userID, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserEnrollment), args.Error(1)
}

func (m *EnrollmentRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserEnrollment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserEnrollment), args.Error(1)
}

func (m *EnrollmentRepository) Delete(ctx context.Context, userID, programID uuid.UUID) error {
	return m.Called(ctx, userID, programID).Error(0)
}
