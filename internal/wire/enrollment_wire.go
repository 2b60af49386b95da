package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"edu-program/internal/adaptor"
	"edu-program/internal/data/entity"
	"edu-program/pkg/middleware"
	"edu-program/pkg/token"
)

func wireEnrollment(
	r chi.Router,
	enrollmentHandler *adaptor.EnrollmentHandler,
	tokens *token.Service,
	log *zap.Logger,
) {
	// Enrollment management - admin rank required
	r.With(middleware.RequireRole(tokens, entity.RoleAdmin, log)).
		Route("/api/enrollments", func(r chi.Router) {
			r.Get("/", enrollmentHandler.Get) // ?user_enrollments&user_id= or ?user_id=&program_id=
			r.Post("/", enrollmentHandler.Enroll)
			r.Delete("/", enrollmentHandler.Cancel)
		})
}
