package services

import (
	"context"
	"testing"

	"learnity/dto"
	"learnity/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCreateAndFetch(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "Ada", "Lovelace", "ada@example.com")
	course := seedCourse(t, db, "Analytical Engines 101", 0)
	svc := NewReviewService(repository.NewReviewRepository(db))

	created, err := svc.Create(context.Background(), dto.ReviewModel{
		UserID:   user.ID,
		CourseID: course.ID,
		Rating:   5,
		Comment:  "excellent",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ReviewID)
	assert.Equal(t, "Lovelace, Ada", created.UserName)

	byCourse, err := svc.GetByCourse(context.Background(), course.ID)
	require.NoError(t, err)
	require.Len(t, byCourse, 1)
	assert.Equal(t, 5, byCourse[0].Rating)
}

func TestReviewCreateValidatesRating(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(repository.NewReviewRepository(db))

	cases := []struct {
		name   string
		rating int
	}{
		{"zero", 0},
		{"too high", 6},
		{"negative", -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), dto.ReviewModel{UserID: 1, CourseID: 1, Rating: tc.rating})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestReviewGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(repository.NewReviewRepository(db))

	_, err := svc.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewDeleteIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(repository.NewReviewRepository(db))

	require.NoError(t, svc.Delete(context.Background(), 7))
}
