package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"edu-program/internal/dto/request"
	"edu-program/internal/usecase"
	"edu-program/pkg/utils"
)

// UserHandler serves the admin user-management endpoint. Routes behind it
// are wired with the admin gate.
type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Get handles GET /api/admin/users and GET /api/admin/users?id=
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		user, err := h.service.GetUser(r.Context(), id)
		if err != nil {
			writeServiceError(w, h.log, err, "get user")
			return
		}
		utils.ResponseSuccess(w, map[string]any{"user": user})
		return
	}

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"users": users})
}

// Create handles POST /api/admin/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, map[string]any{
		"message": "User created successfully",
		"user":    user,
	})
}

// Update handles PUT /api/admin/users
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, map[string]any{
		"message": "User updated successfully",
		"user":    user,
	})
}

// ResetPassword handles PATCH /api/admin/users
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		writeServiceError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"message": "Password updated successfully"})
}

// Delete handles DELETE /api/admin/users
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req request.DeleteUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.DeleteUser(r.Context(), &req); err != nil {
		writeServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, map[string]any{"message": "User deleted successfully"})
}
