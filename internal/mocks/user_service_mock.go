package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"edu-program/internal/dto/request"
	"edu-program/internal/dto/response"
)

type UserService struct{ mock.Mock }

func (m *UserService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.UserResponse), args.Error(1)
}

func (m *UserService) GetUser(ctx context.Context, id string) (*response.UserResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *UserService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *UserService) UpdateUser(ctx context.Context, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *UserService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *UserService) DeleteUser(ctx context.Context, req *request.DeleteUserRequest) error {
	return m.Called(ctx, req).Error(0)
}
