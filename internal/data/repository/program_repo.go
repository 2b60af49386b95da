package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"edu-program/internal/data/entity"
	"edu-program/pkg/database"
)

// ProgramRepository reads the program catalog. Writes belong to the catalog
// feature, not this service.
type ProgramRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Program, error)
}

type programRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProgramRepository(db database.PgxIface, log *zap.Logger) ProgramRepository {
	return &programRepository{
		db:  db,
		log: log.With(zap.String("repository", "program")),
	}
}

func (pr *programRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Program, error) {
	query := `
		SELECT id, title, description, image_filename, price, schedule,
		       created_at, updated_at
		FROM programs
		WHERE id = $1
	`

	var program entity.Program
	err := pr.db.QueryRow(ctx, query, id).Scan(
		&program.ID,
		&program.Title,
		&program.Description,
		&program.ImageFilename,
		&program.Price,
		&program.Schedule,
		&program.CreatedAt,
		&program.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find program by ID",
			zap.Error(err),
			zap.String("program_id", id.String()),
		)
		return nil, fmt.Errorf("find program by ID %s: %w", id.String(), err)
	}

	return &program, nil
}
