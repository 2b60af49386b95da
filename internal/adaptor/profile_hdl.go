package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"edu-program/internal/dto/request"
	"edu-program/internal/usecase"
	"edu-program/pkg/utils"
)

// ProfileHandler serves the self-service endpoint. The target id always
// comes from the verified claims, never from the request body.
type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log,
	}
}

// callerID resolves the authenticated user's id from the gate's claims.
func (h *ProfileHandler) callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		h.log.Warn("Malformed user id in claims", zap.String("user_id", claims.UserID))
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, false
	}

	return userID, true
}

// Get handles GET /api/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"user": profile})
}

// Update handles PUT /api/profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, map[string]any{
		"message": "Profile updated successfully",
		"user":    profile,
	})
}

// ChangePassword handles PATCH /api/profile
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req request.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, &req); err != nil {
		writeServiceError(w, h.log, err, "change password")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"message": "Password updated successfully"})
}

// Delete handles DELETE /api/profile
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req request.DeleteAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.DeleteAccount(r.Context(), userID, &req); err != nil {
		writeServiceError(w, h.log, err, "delete account")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"message": "Account deleted successfully"})
}
