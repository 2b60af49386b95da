package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"edu-program/internal/dto/request"
	"edu-program/internal/usecase"
	"edu-program/pkg/utils"
)

type EnrollmentHandler struct {
	service usecase.EnrollmentService
	log     *zap.Logger
}

func NewEnrollmentHandler(service usecase.EnrollmentService, log *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service: service,
		log:     log,
	}
}

// Get handles GET /api/enrollments. The user_enrollments flag selects the
// per-user listing; otherwise it answers an enrollment status check for a
// (user, program) pair.
func (h *EnrollmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Has("user_enrollments") {
		userID := query.Get("user_id")
		if userID == "" {
			utils.ResponseBadRequest(w, "User ID is required")
			return
		}

		resp, err := h.service.ListUserEnrollments(r.Context(), userID)
		if err != nil {
			writeServiceError(w, h.log, err, "list user enrollments")
			return
		}

		utils.ResponseSuccess(w, resp)
		return
	}

	userID := query.Get("user_id")
	programID := query.Get("program_id")
	if userID == "" || programID == "" {
		utils.ResponseBadRequest(w, "User ID and Program ID are required")
		return
	}

	resp, err := h.service.GetStatus(r.Context(), userID, programID)
	if err != nil {
		writeServiceError(w, h.log, err, "check enrollment")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// Enroll handles POST /api/enrollments
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	var req request.EnrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	enrollment, err := h.service.Enroll(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "enroll")
		return
	}

	utils.ResponseCreated(w, map[string]any{
		"message":    "Successfully enrolled in program",
		"enrollment": enrollment,
	})
}

// Cancel handles DELETE /api/enrollments
func (h *EnrollmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req request.CancelEnrollmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.Cancel(r.Context(), &req); err != nil {
		writeServiceError(w, h.log, err, "cancel enrollment")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"message": "Successfully canceled enrollment"})
}
