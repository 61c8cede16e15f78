package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID   uint    `json:"user_id" gorm:"index;not null"`
	CourseID uint    `json:"course_id" gorm:"index;not null"`
	Rating   int     `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1–5 rating
	Comment  string  `json:"comment" gorm:"type:text;default:''"`
	User     *User   `json:"user,omitempty"`
	Course   *Course `json:"course,omitempty"`
}
