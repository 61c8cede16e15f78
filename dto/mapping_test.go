package dto

import (
	"testing"
	"time"

	"learnity/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ada = &models.User{FirstName: "Ada", LastName: "Lovelace"}

func TestReviewDisplayNameIsSurnameFirst(t *testing.T) {
	review := models.Review{UserID: 1, CourseID: 2, Rating: 4, User: ada}

	m := ReviewFromEntity(review)
	assert.Equal(t, "Lovelace, Ada", m.UserName)
}

func TestVideoRequestDisplayNameIsGivenNameFirst(t *testing.T) {
	request := models.VideoRequest{UserID: 1, Topic: "Generics", User: ada}

	m := VideoRequestFromEntity(request)
	assert.Equal(t, "Ada, Lovelace", m.UserName)
}

func TestDisplayNamesOmittedWithoutUser(t *testing.T) {
	assert.Empty(t, ReviewFromEntity(models.Review{}).UserName)
	assert.Empty(t, VideoRequestFromEntity(models.VideoRequest{}).UserName)
}

func TestEnrollmentCurrentPaymentIsLatest(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	enrollment := models.Enrollment{
		UserID:   1,
		CourseID: 2,
		Course:   &models.Course{Title: "Analytical Engines 101"},
		Payments: []models.Payment{
			{Amount: 10, PaymentDate: jan},
			{Amount: 20, PaymentDate: feb},
		},
	}

	m := EnrollmentFromEntity(enrollment)
	require.NotNil(t, m.CurrentPayment)
	assert.Equal(t, 20.0, m.CurrentPayment.Amount)
	assert.True(t, m.CurrentPayment.PaymentDate.Equal(feb))
	assert.Equal(t, "Analytical Engines 101", m.CourseTitle)
}

func TestEnrollmentWithoutPaymentsHasNoCurrentPayment(t *testing.T) {
	m := EnrollmentFromEntity(models.Enrollment{UserID: 1, CourseID: 2})
	assert.Nil(t, m.CurrentPayment)
	assert.Empty(t, m.CourseTitle)
}

func TestCourseModelDenormalizesCategoryName(t *testing.T) {
	course := models.Course{
		Title:      "Analytical Engines 101",
		CategoryID: 3,
		Category:   &models.CourseCategory{Name: "Programming"},
	}

	m := CourseFromEntity(course)
	assert.Equal(t, "Programming", m.CategoryName)
}

func TestUserDisplayName(t *testing.T) {
	m := UserFromEntity(models.User{FirstName: "Ada", LastName: "Lovelace"})
	assert.Equal(t, "Ada Lovelace", m.DisplayName)
}
