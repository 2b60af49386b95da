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

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	UsernameTaken(ctx context.Context, username string, exclude uuid.UUID) (bool, error)
	EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, fields *UpdateBuilder) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record. A username or email collision surfaces
// as apperr.ErrConflict via the unique constraints.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password, role, is_active,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return apperr.ErrConflict
	}
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, username, email, password, role, is_active,
		       created_at, updated_at
		FROM users
		WHERE id = $1
	`

	return ur.scanOne(ctx, query, id)
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, username, email, password, role, is_active,
		       created_at, updated_at
		FROM users
		WHERE email = $1
	`

	return ur.scanOne(ctx, query, email)
}

// scanOne runs a single-row lookup. Absent rows return nil, nil.
func (ur *userRepository) scanOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var user entity.User
	err := ur.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user", zap.Error(err))
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &user, nil
}

func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, username, email, password, role, is_active,
		       created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.IsActive,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

// UsernameTaken reports whether another user (excluding exclude) holds the
// username. Pass uuid.Nil to check against all rows.
func (ur *userRepository) UsernameTaken(ctx context.Context, username string, exclude uuid.UUID) (bool, error) {
	return ur.taken(ctx, "username", username, exclude)
}

func (ur *userRepository) EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	return ur.taken(ctx, "email", email, exclude)
}

func (ur *userRepository) taken(ctx context.Context, column, value string, exclude uuid.UUID) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM users WHERE %s = $1 AND id != $2)`, column)

	var exists bool
	if err := ur.db.QueryRow(ctx, query, value, exclude).Scan(&exists); err != nil {
		ur.log.Error("Failed to check uniqueness",
			zap.Error(err),
			zap.String("column", column),
		)
		return false, fmt.Errorf("check %s taken: %w", column, err)
	}

	return exists, nil
}

// Update applies a sparse field set built by the caller. Zero affected rows
// mean the target is gone and return apperr.ErrNotFound; unique violations
// surface as apperr.ErrConflict.
func (ur *userRepository) Update(ctx context.Context, id uuid.UUID, fields *UpdateBuilder) error {
	query, args := fields.SQL("users", id)

	result, err := ur.db.Exec(ctx, query, args...)
	if isUniqueViolation(err) {
		return apperr.ErrConflict
	}
	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("update user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}

	return nil
}

func (ur *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		ur.log.Error("Failed to update password",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("update password for user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}

	return nil
}

func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}

	ur.log.Info("User deleted", zap.String("id", id.String()))
	return nil
}
