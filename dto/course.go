package dto

import "learnity/models"

// CourseModel is the list/summary transport shape for a course
type CourseModel struct {
	CourseID     uint    `json:"course_id"`
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"gte=0"`
	Duration     int64   `json:"duration"`
	ThumbnailURL string  `json:"thumbnail_url"`
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name,omitempty"`
}

// CourseDetailModel adds the aggregate's instructors and reviews
type CourseDetailModel struct {
	CourseModel
	Instructors []InstructorModel `json:"instructors"`
	Reviews     []ReviewModel     `json:"reviews"`
}

type InstructorModel struct {
	InstructorID uint   `json:"instructor_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Bio          string `json:"bio"`
}

func CourseFromEntity(c models.Course) CourseModel {
	m := CourseModel{
		CourseID:     c.ID,
		Title:        c.Title,
		Description:  c.Description,
		Price:        c.Price,
		Duration:     c.Duration,
		ThumbnailURL: c.ThumbnailURL,
		CategoryID:   c.CategoryID,
	}
	if c.Category != nil {
		m.CategoryName = c.Category.Name
	}
	return m
}

func CoursesFromEntities(courses []models.Course) []CourseModel {
	out := make([]CourseModel, 0, len(courses))
	for _, c := range courses {
		out = append(out, CourseFromEntity(c))
	}
	return out
}

func CourseDetailFromEntity(c models.Course) CourseDetailModel {
	d := CourseDetailModel{
		CourseModel: CourseFromEntity(c),
		Instructors: make([]InstructorModel, 0, len(c.Instructors)),
		Reviews:     make([]ReviewModel, 0, len(c.Reviews)),
	}
	for _, i := range c.Instructors {
		d.Instructors = append(d.Instructors, InstructorFromEntity(i))
	}
	for _, r := range c.Reviews {
		d.Reviews = append(d.Reviews, ReviewFromEntity(r))
	}
	return d
}

func InstructorFromEntity(i models.Instructor) InstructorModel {
	return InstructorModel{
		InstructorID: i.ID,
		FirstName:    i.FirstName,
		LastName:     i.LastName,
		Bio:          i.Bio,
	}
}

func (m CourseModel) ToEntity() models.Course {
	c := models.Course{
		Title:        m.Title,
		Description:  m.Description,
		Price:        m.Price,
		Duration:     m.Duration,
		ThumbnailURL: m.ThumbnailURL,
		CategoryID:   m.CategoryID,
	}
	c.ID = m.CourseID
	return c
}
