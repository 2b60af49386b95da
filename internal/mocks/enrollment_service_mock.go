package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"edu-program/internal/dto/request"
	"edu-program/internal/dto/response"
)

type EnrollmentService struct{ mock.Mock }

func (m *EnrollmentService) Enroll(ctx context.Context, req *request.EnrollRequest) (*response.EnrollmentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.EnrollmentResponse), args.Error(1)
}

func (m *EnrollmentService) Cancel(ctx context.Context, req *request.CancelEnrollmentRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *EnrollmentService) GetStatus(ctx context.Context, userID, programID string) (*response.EnrollmentStatusResponse, error) {
	args := m.Called(ctx, userID, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.EnrollmentStatusResponse), args.Error(1)
}

func (m *EnrollmentService) ListUserEnrollments(ctx context.Context, userID string) (*response.UserEnrollmentsResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserEnrollmentsResponse), args.Error(1)
}
