package services

import (
	"context"
	"testing"
	"time"

	"learnity/models"
	"learnity/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEnrollmentService(t *testing.T) (EnrollmentService, *testFixtures) {
	t.Helper()

	db := setupTestDB(t)
	f := &testFixtures{db: db}
	f.user = seedUser(t, db, "Ada", "Lovelace", "ada@example.com")
	f.course = seedCourse(t, db, "Analytical Engines 101", 0)

	svc := NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
	)
	return svc, f
}

type testFixtures struct {
	db     *gorm.DB
	user   models.User
	course models.Course
}

func TestEnrollCreatesEnrollment(t *testing.T) {
	svc, f := newEnrollmentService(t)

	enrollment, err := svc.Enroll(context.Background(), f.user.ID, f.course.ID)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, enrollment.UserID)
	assert.Equal(t, f.course.ID, enrollment.CourseID)
	assert.Equal(t, "Analytical Engines 101", enrollment.CourseTitle)
	assert.False(t, enrollment.EnrollmentDate.IsZero())
	assert.Nil(t, enrollment.CurrentPayment)
}

func TestEnrollTwiceConflicts(t *testing.T) {
	svc, f := newEnrollmentService(t)

	_, err := svc.Enroll(context.Background(), f.user.ID, f.course.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), f.user.ID, f.course.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc, f := newEnrollmentService(t)

	_, err := svc.Enroll(context.Background(), f.user.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnrollRejectsZeroIDs(t *testing.T) {
	svc, _ := newEnrollmentService(t)

	_, err := svc.Enroll(context.Background(), 0, 1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Enroll(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetEnrollmentByIDNotFound(t *testing.T) {
	svc, _ := newEnrollmentService(t)

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetEnrollmentsByUserEmpty(t *testing.T) {
	svc, f := newEnrollmentService(t)

	enrollments, err := svc.GetByUser(context.Background(), f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, enrollments)
}

func TestGetEnrollmentSelectsCurrentPayment(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "Ada", "Lovelace", "ada@example.com")
	course := seedCourse(t, db, "Analytical Engines 101", 0)

	svc := NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
	)

	enrollment, err := svc.Enroll(context.Background(), user.ID, course.ID)
	require.NoError(t, err)

	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Payment{EnrollmentID: enrollment.EnrollmentID, Amount: 10, PaymentDate: jan}).Error)
	require.NoError(t, db.Create(&models.Payment{EnrollmentID: enrollment.EnrollmentID, Amount: 20, PaymentDate: feb}).Error)

	fetched, err := svc.GetByID(context.Background(), enrollment.EnrollmentID)
	require.NoError(t, err)
	require.NotNil(t, fetched.CurrentPayment)
	assert.Equal(t, 20.0, fetched.CurrentPayment.Amount)
	assert.True(t, fetched.CurrentPayment.PaymentDate.Equal(feb))
}
