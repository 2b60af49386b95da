package response

import (
	"time"

	"edu-program/internal/data/entity"
)

type EnrollmentResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	ProgramID          string    `json:"program_id"`
	EnrolledAt         time.Time `json:"enrolled_at"`
	ProgramTitle       string    `json:"program_title"`
	ProgramDescription *string   `json:"program_description,omitempty"`
	Price              *float64  `json:"price,omitempty"`
	Schedule           *string   `json:"schedule,omitempty"`
	ImageURL           *string   `json:"image_url,omitempty"`
}

type UserEnrollmentsResponse struct {
	UserID           string               `json:"user_id"`
	TotalEnrollments int                  `json:"total_enrollments"`
	Enrollments      []EnrollmentResponse `json:"enrollments"`
}

type EnrollmentStatusResponse struct {
	IsEnrolled bool                `json:"is_enrolled"`
	Enrollment *EnrollmentResponse `json:"enrollment,omitempty"`
	Message    string              `json:"message,omitempty"`
}

// EnrollmentToResponse flattens the program join; imageBaseURL prefixes the
// stored filename the way the upload feature serves it.
func EnrollmentToResponse(e *entity.UserEnrollment, imageBaseURL string) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:                 e.ID.String(),
		UserID:             e.UserID.String(),
		ProgramID:          e.ProgramID.String(),
		EnrolledAt:         e.EnrolledAt,
		ProgramTitle:       e.ProgramTitle,
		ProgramDescription: e.ProgramDescription,
		Price:              e.Price,
		Schedule:           e.Schedule,
	}

	if e.ImageFilename != nil && *e.ImageFilename != "" {
		url := imageBaseURL + *e.ImageFilename
		resp.ImageURL = &url
	}

	return resp
}
