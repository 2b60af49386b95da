package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"edu-program/internal/data/entity"
	"edu-program/internal/data/repository"
	"edu-program/internal/dto/request"
	"edu-program/internal/mocks"
	"edu-program/pkg/apperr"
	"edu-program/pkg/utils"
)

type enrollmentFixture struct {
	userRepo    *mocks.UserRepository
	programRepo *mocks.ProgramRepository
	enrollRepo  *mocks.EnrollmentRepository
	svc         EnrollmentService
}

func newEnrollmentFixture() *enrollmentFixture {
	f := &enrollmentFixture{
		userRepo:    new(mocks.UserRepository),
		programRepo: new(mocks.ProgramRepository),
		enrollRepo:  new(mocks.EnrollmentRepository),
	}

	repo := &repository.Repository{
		User:       f.userRepo,
		Program:    f.programRepo,
		Enrollment: f.enrollRepo,
	}
	config := &utils.Config{
		Upload: utils.UploadConfig{BaseURL: "/uploads/"},
	}

	f.svc = NewEnrollmentService(repo, config, zap.NewNop())
	return f
}

func storedProgram(id uuid.UUID) *entity.Program {
	image := "go-basics.png"
	price := 49.99
	return &entity.Program{
		Base:          entity.Base{ID: id},
		Title:         "Go Basics",
		ImageFilename: &image,
		Price:         &price,
	}
}

func storedEnrollment(userID, programID uuid.UUID) *entity.UserEnrollment {
	image := "go-basics.png"
	price := 49.99
	return &entity.UserEnrollment{
		Enrollment: entity.Enrollment{
			ID:         uuid.New(),
			UserID:     userID,
			ProgramID:  programID,
			EnrolledAt: time.Now(),
		},
		ProgramTitle:  "Go Basics",
		ImageFilename: &image,
		Price:         &price,
	}
}

func TestEnroll(t *testing.T) {
	f := newEnrollmentFixture()
	userID, programID := uuid.New(), uuid.New()

	f.userRepo.On("FindByID", mock.Anything, userID).Return(storedUser(userID), nil)
	f.programRepo.On("FindByID", mock.Anything, programID).Return(storedProgram(programID), nil)
	f.enrollRepo.On("FindByPair", mock.Anything, userID, programID).Return(nil, nil).Once()
	f.enrollRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Enrollment")).Return(nil)
	f.enrollRepo.On("FindByPair", mock.Anything, userID, programID).
		Return(storedEnrollment(userID, programID), nil).Once()

	resp, err := f.svc.Enroll(context.Background(), &request.EnrollRequest{
		UserID:    userID.String(),
		ProgramID: programID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, programID.String(), resp.ProgramID)
	assert.Equal(t, "Go Basics", resp.ProgramTitle)
	require.NotNil(t, resp.ImageURL)
	assert.Equal(t, "/uploads/go-basics.png", *resp.ImageURL)
}

func TestEnrollInvalidIDs(t *testing.T) {
	f := newEnrollmentFixture()

	resp, err := f.svc.Enroll(context.Background(), &request.EnrollRequest{
		UserID:    "not-a-uuid",
		ProgramID: uuid.NewString(),
	})

	assert.ErrorIs(t, err, apperr.ErrBadRequest)
	assert.Nil(t, resp)
	f.enrollRepo.AssertNotCalled(t, "Create")
}

func TestEnrollUserNotFound(t *testing.T) {
	f := newEnrollmentFixture()
	userID, programID := uuid.New(), uuid.New()

	f.userRepo.On("FindByID", mock.Anything, userID).Return(nil, nil)

	resp, err := f.svc.Enroll(context.Background(), &request.EnrollRequest{
		UserID:    userID.String(),
		ProgramID: programID.String(),
	})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.EqualError(t, err, "User not found")
	assert.Nil(t, resp)
}

func TestEnrollProgramNotFound(t *testing.T) {
	f := newEnrollmentFixture()
	userID, programID := uuid.New(), uuid.New()

	f.userRepo.On("FindByID", mock.Anything, userID).Return(storedUser(userID), nil)
	f.programRepo.On("FindByID", mock.Anything, programID).Return(nil, nil)

	resp, err := f.svc.Enroll(context.Background(), &request.EnrollRequest{
		UserID:    userID.String(),
		ProgramID: programID.String(),
	})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.EqualError(t, err, "Program not found")
	assert.Nil(t, resp)
}

func TestEnrollAlreadyEnrolled(t *testing.T) {
	f := newEnrollmentFixture()
	userID, programID := uuid.New(), uuid.New()

	f.userRepo.On("FindByID", mock.Anything, userID).Return(storedUser(userID), nil)
	f.programRepo.On("FindByID", mock.Anything, programID).Return(storedProgram(programID), nil)
	f.enrollRepo.On("FindByPair", mock.Anything, userID, programID).
		Return(storedEnrollment(userID, programID), nil)

	resp, err := f.svc.Enroll(context.Background(), &request.EnrollRequest{
		UserID:    userID.String(),
		ProgramID: programID.String(),
	})

	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.EqualError(t, err, "User is already enrolled in this program")
	assert.Nil(t, resp)
	f.enrollRepo.AssertNotCalled(t, "Create")
}

// Two requests can pass the pre-check concurrently; the losing insert comes
// back as the same conflict the pre-check would have reported.
func TestEnrollConstraintRace(t *testing.T) {
	f := newEnrollmentFixture()
	userID, programID := uuid.New(), uuid.New()

	f.userRepo.On("FindByID", mock.Anything, userID).Return(storedUser(userID), nil)
	f.programRepo.On("FindByID", mock.Anything, programID).Return(storedProgram(programID), nil)
	f.enrollRepo.On("FindByPair", mock.Anything, userID, programID).Return(nil, nil)
	f.enrollRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Enrollment")).
		Return(apperr.ErrConflict)

	resp, err := f.svc.Enroll(context.Background(), &request.EnrollRequest{
		UserID:    userID.String(),
		ProgramID: programID.String(),
	})

	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.EqualError(t, err, "User is already enrolled in this program")
	assert.Nil(t, resp)
}

func TestCancel(t *testing.T) {
	f := newEnrollmentFixture()
	userID, programID := uuid.New(), uuid.New()

	f.enrollRepo.On("Delete", mock.Anything, userID, programID).Return(nil)

	err := f.svc.Cancel(context.Background(), &request.CancelEnrollmentRequest{
		UserID:    userID.String(),
		ProgramID: programID.String(),
	})

	require.NoError(t, err)
}

func TestCancelNotFound(t *testing.T) {
	f := newEnrollmentFixture()
	userID, programID := uuid.New(), uuid.New()

	f.enrollRepo.On("Delete", mock.Anything, userID, programID).Return(apperr.ErrNotFound)

	err := f.svc.Cancel(context.Background(), &request.CancelEnrollmentRequest{
		UserID:    userID.String(),
		ProgramID: programID.String(),
	})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.EqualError(t, err, "Enrollment not found")
}

func TestGetStatusEnrolled(t *testing.T) {
	f := newEnrollmentFixture()
	userID, programID := uuid.New(), uuid.New()

	f.enrollRepo.On("FindByPair", mock.Anything, userID, programID).
		Return(storedEnrollment(userID, programID), nil)

	resp, err := f.svc.GetStatus(context.Background(), userID.String(), programID.String())

	require.NoError(t, err)
	assert.True(t, resp.IsEnrolled)
	require.NotNil(t, resp.Enrollment)
	assert.Equal(t, "Go Basics", resp.Enrollment.ProgramTitle)
	assert.Empty(t, resp.Message)
}

func TestGetStatusNotEnrolled(t *testing.T) {
	f := newEnrollmentFixture()
	userID, programID := uuid.New(), uuid.New()

	f.enrollRepo.On("FindByPair", mock.Anything, userID, programID).Return(nil, nil)

	resp, err := f.svc.GetStatus(context.Background(), userID.String(), programID.String())

	require.NoError(t, err)
	assert.False(t, resp.IsEnrolled)
	assert.Nil(t, resp.Enrollment)
	assert.Equal(t, "User is not enrolled in this program", resp.Message)
}

func TestListUserEnrollments(t *testing.T) {
	f := newEnrollmentFixture()
	userID := uuid.New()

	enrollments := []*entity.UserEnrollment{
		storedEnrollment(userID, uuid.New()),
		storedEnrollment(userID, uuid.New()),
	}
	f.enrollRepo.On("FindAllByUser", mock.Anything, userID).Return(enrollments, nil)

	resp, err := f.svc.ListUserEnrollments(context.Background(), userID.String())

	require.NoError(t, err)
	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, 2, resp.TotalEnrollments)
	require.Len(t, resp.Enrollments, 2)
	assert.Equal(t, enrollments[0].ID.String(), resp.Enrollments[0].ID)
}

func TestListUserEnrollmentsEmpty(t *testing.T) {
	f := newEnrollmentFixture()
	userID := uuid.New()

	f.enrollRepo.On("FindAllByUser", mock.Anything, userID).Return([]*entity.UserEnrollment{}, nil)

	resp, err := f.svc.ListUserEnrollments(context.Background(), userID.String())

	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalEnrollments)
	assert.Empty(t, resp.Enrollments)
}

func TestListUserEnrollmentsInvalidID(t *testing.T) {
	f := newEnrollmentFixture()

	resp, err := f.svc.ListUserEnrollments(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, apperr.ErrBadRequest)
	assert.Nil(t, resp)
	f.enrollRepo.AssertNotCalled(t, "FindAllByUser")
}
