package models

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	Title        string          `json:"title" gorm:"not null"`
	Description  string          `json:"description" gorm:"type:text;default:''"`
	Price        float64         `json:"price" gorm:"default:0"`
	Duration     int64           `json:"duration" gorm:"default:0"` // duration in hours
	ThumbnailURL string          `json:"thumbnail_url" gorm:"default:''"`
	CategoryID   uint            `json:"category_id" gorm:"index"`
	Category     *CourseCategory `json:"category,omitempty"`
	Instructors  []Instructor    `json:"instructors,omitempty"`
	Enrollments  []Enrollment    `json:"enrollments,omitempty"`
	Reviews      []Review        `json:"reviews,omitempty"`
}

// Instructor teaches one course; the display profile lives on the record itself
type Instructor struct {
	gorm.Model
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio" gorm:"type:text;default:''"`
	CourseID  uint   `json:"course_id" gorm:"index"`
}
