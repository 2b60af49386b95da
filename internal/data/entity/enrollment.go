package entity

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	ProgramID  uuid.UUID `db:"program_id"`
	EnrolledAt time.Time `db:"enrolled_at"`
}

// UserEnrollment is an enrollment joined with its program's catalog fields.
type UserEnrollment struct {
	Enrollment
	ProgramTitle       string   `db:"title"`
	ProgramDescription *string  `db:"description"`
	ImageFilename      *string  `db:"image_filename"`
	Price              *float64 `db:"price"`
	Schedule           *string  `db:"schedule"`
}
