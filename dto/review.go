package dto

import (
	"fmt"

	"learnity/models"
)

// ReviewModel is the transport shape for a course review
type ReviewModel struct {
	ReviewID uint   `json:"review_id"`
	UserID   uint   `json:"user_id" validate:"required"`
	CourseID uint   `json:"course_id" validate:"required"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment  string `json:"comment"`
	UserName string `json:"user_name,omitempty"`
}

// ReviewFromEntity maps a review. The reviewer's display name is rendered
// surname-first ("Lovelace, Ada") when the user record is loaded.
func ReviewFromEntity(r models.Review) ReviewModel {
	m := ReviewModel{
		ReviewID: r.ID,
		UserID:   r.UserID,
		CourseID: r.CourseID,
		Rating:   r.Rating,
		Comment:  r.Comment,
	}
	if r.User != nil {
		m.UserName = fmt.Sprintf("%s, %s", r.User.LastName, r.User.FirstName)
	}
	return m
}

func ReviewsFromEntities(rs []models.Review) []ReviewModel {
	out := make([]ReviewModel, 0, len(rs))
	for _, r := range rs {
		out = append(out, ReviewFromEntity(r))
	}
	return out
}

func (m ReviewModel) ToEntity() models.Review {
	r := models.Review{
		UserID:   m.UserID,
		CourseID: m.CourseID,
		Rating:   m.Rating,
		Comment:  m.Comment,
	}
	r.ID = m.ReviewID
	return r
}
