package adaptor

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"edu-program/internal/usecase"
	"edu-program/pkg/apperr"
	"edu-program/pkg/utils"
)

type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Profile    *ProfileHandler
	Enrollment *EnrollmentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		User:       NewUserHandler(service.User, log),
		Profile:    NewProfileHandler(service.Profile, log),
		Enrollment: NewEnrollmentHandler(service.Enrollment, log),
	}
}

// writeServiceError maps service errors onto the response taxonomy. Internal
// failures get a generic body; the detail stays in the server log.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, apperr.ErrBadRequest):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	case errors.Is(err, apperr.ErrUnauthorized), errors.Is(err, apperr.ErrInvalidToken):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, apperr.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, apperr.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, apperr.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
