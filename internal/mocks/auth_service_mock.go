package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"edu-program/internal/dto/request"
	"edu-program/internal/dto/response"
)

type AuthService struct{ mock.Mock }

func (m *AuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.UserResponse), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AuthResponse), args.Error(1)
}
