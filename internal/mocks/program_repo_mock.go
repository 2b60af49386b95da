package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"edu-program/internal/data/entity"
)

type ProgramRepository struct{ mock.Mock }

func (m *ProgramRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Program), args.Error(1)
}
