package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"edu-program/pkg/database"
)

type Repository struct {
	User       UserRepository
	Program    ProgramRepository
	Enrollment EnrollmentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Program:    NewProgramRepository(db, log),
		Enrollment: NewEnrollmentRepository(db, log),
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505). The schema's unique constraints are the
// authoritative backstop for check-then-act races.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
