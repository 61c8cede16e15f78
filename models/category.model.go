package models

import "gorm.io/gorm"

// CourseCategory groups courses for browsing and filtering
type CourseCategory struct {
	gorm.Model
	Name        string   `json:"name" gorm:"not null"`
	Description string   `json:"description" gorm:"type:text;default:''"`
	Courses     []Course `json:"courses,omitempty" gorm:"foreignKey:CategoryID"`
}
