package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"edu-program/internal/data/entity"
	"edu-program/internal/data/repository"
	"edu-program/internal/mocks"
	"edu-program/pkg/token"
	"edu-program/pkg/utils"
)

func newTestApp() (*App, *token.Service) {
	repo := &repository.Repository{
		User:       new(mocks.UserRepository),
		Program:    new(mocks.ProgramRepository),
		Enrollment: new(mocks.EnrollmentRepository),
	}
	tokens := token.NewService([]byte("test-secret"), time.Hour)
	config := &utils.Config{
		Upload: utils.UploadConfig{BaseURL: "/uploads/"},
	}

	return Wiring(repo, tokens, config, zap.NewNop()), tokens
}

func TestRouterHealth(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouterNotFound(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestRouterMethodNotAllowed(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest(http.MethodPatch, "/api/login", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

// Sub-routers mounted behind the auth gate inherit the JSON 405 handler; an
// unregistered verb past the gate still gets the shared body shape.
func TestRouterSubrouterMethodNotAllowed(t *testing.T) {
	app, tokens := newTestApp()

	adminToken, err := tokens.Issue(&entity.User{
		Base: entity.Base{ID: uuid.New()},
		Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/api/enrollments", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

// Preflight requests succeed on any route without a token.
func TestRouterPreflight(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest(http.MethodOptions, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestRouterProtectedRoutes(t *testing.T) {
	app, tokens := newTestApp()

	learnerToken, err := tokens.Issue(&entity.User{
		Base: entity.Base{ID: uuid.New()},
		Role: entity.RoleLearner,
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		target     string
		authHeader string
		wantStatus int
	}{
		{
			name:       "admin route without token",
			method:     http.MethodGet,
			target:     "/api/admin/users",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "admin route with learner token",
			method:     http.MethodGet,
			target:     "/api/admin/users",
			authHeader: "Bearer " + learnerToken,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "enrollments without token",
			method:     http.MethodPost,
			target:     "/api/enrollments",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "profile without token",
			method:     http.MethodGet,
			target:     "/api/profile",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			app.Router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
