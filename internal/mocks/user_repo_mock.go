package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"edu-program/internal/data/entity"
	"edu-program/internal/data/repository"
)

type UserRepository struct{ mock.Mock }

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *UserRepository) UsernameTaken(ctx context.Context, username string, exclude uuid.UUID) (bool, error) {
	args := m.Called(ctx, username, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, id uuid.UUID, fields *repository.UpdateBuilder) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
