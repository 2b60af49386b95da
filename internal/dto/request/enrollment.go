package request

type EnrollRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	ProgramID string `json:"program_id" validate:"required,uuid"`
}

type CancelEnrollmentRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	ProgramID string `json:"program_id" validate:"required,uuid"`
}
