package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"edu-program/internal/data/entity"
	"edu-program/pkg/apperr"
	"edu-program/pkg/database"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *entity.Enrollment) error
	FindByPair(ctx context.Context, userID, programID uuid.UUID) (*entity.UserEnrollment, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserEnrollment, error)
	Delete(ctx context.Context, userID, programID uuid.UUID) error
}

type enrollmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEnrollmentRepository(db database.PgxIface, log *zap.Logger) EnrollmentRepository {
	return &enrollmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "enrollment")),
	}
}

// Create inserts an enrollment. A duplicate (user_id, program_id) pair hits
// the unique constraint and returns apperr.ErrConflict, which also covers
// the race where two requests pass the pre-check concurrently.
func (er *enrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	query := `
		INSERT INTO program_enrollments (id, user_id, program_id, enrolled_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := er.db.Exec(ctx, query,
		enrollment.ID,
		enrollment.UserID,
		enrollment.ProgramID,
		enrollment.EnrolledAt,
	)

	if isUniqueViolation(err) {
		return apperr.ErrConflict
	}
	if err != nil {
		er.log.Error("Failed to create enrollment",
			zap.Error(err),
			zap.String("user_id", enrollment.UserID.String()),
			zap.String("program_id", enrollment.ProgramID.String()),
		)
		return fmt.Errorf("create enrollment: %w", err)
	}

	return nil
}

func (er *enrollmentRepository) FindByPair(ctx context.Context, userID, programID uuid.UUID) (*entity.UserEnrollment, error) {
	query := `
		SELECT pe.id, pe.user_id, pe.program_id, pe.enrolled_at,
		       p.title, p.description, p.image_filename, p.price, p.schedule
		FROM program_enrollments pe
		JOIN programs p ON pe.program_id = p.id
		WHERE pe.user_id = $1 AND pe.program_id = $2
	`

	var e entity.UserEnrollment
	err := er.db.QueryRow(ctx, query, userID, programID).Scan(
		&e.ID,
		&e.UserID,
		&e.ProgramID,
		&e.EnrolledAt,
		&e.ProgramTitle,
		&e.ProgramDescription,
		&e.ImageFilename,
		&e.Price,
		&e.Schedule,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		er.log.Error("Failed to find enrollment",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("program_id", programID.String()),
		)
		return nil, fmt.Errorf("find enrollment: %w", err)
	}

	return &e, nil
}

func (er *enrollmentRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserEnrollment, error) {
	query := `
		SELECT pe.id, pe.user_id, pe.program_id, pe.enrolled_at,
		       p.title, p.description, p.image_filename, p.price, p.schedule
		FROM program_enrollments pe
		JOIN programs p ON pe.program_id = p.id
		WHERE pe.user_id = $1
		ORDER BY pe.enrolled_at DESC
	`

	rows, err := er.db.Query(ctx, query, userID)
	if err != nil {
		er.log.Error("Failed to get user enrollments",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find enrollments for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var enrollments []*entity.UserEnrollment
	for rows.Next() {
		var e entity.UserEnrollment
		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.ProgramID,
			&e.EnrolledAt,
			&e.ProgramTitle,
			&e.ProgramDescription,
			&e.ImageFilename,
			&e.Price,
			&e.Schedule,
		)
		if err != nil {
			er.log.Error("Failed to scan enrollment row", zap.Error(err))
			return nil, fmt.Errorf("scan enrollment row: %w", err)
		}
		enrollments = append(enrollments, &e)
	}

	if err := rows.Err(); err != nil {
		er.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate enrollment rows: %w", err)
	}

	return enrollments, nil
}

// Delete removes the enrollment for the (user, program) pair. Zero affected
// rows return apperr.ErrNotFound.
func (er *enrollmentRepository) Delete(ctx context.Context, userID, programID uuid.UUID) error {
	query := `DELETE FROM program_enrollments WHERE user_id = $1 AND program_id = $2`

	result, err := er.db.Exec(ctx, query, userID, programID)
	if err != nil {
		er.log.Error("Failed to delete enrollment",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("program_id", programID.String()),
		)
		return fmt.Errorf("delete enrollment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}

	return nil
}
