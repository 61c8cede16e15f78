package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment ties a user to a course. The composite unique index is the
// durable guard against duplicate enrollments; the service-level pre-check
// only exists to produce a friendly conflict message.
type Enrollment struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID       uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	User           *User     `json:"user,omitempty"`
	Course         *Course   `json:"course,omitempty"`
	Payments       []Payment `json:"payments,omitempty"`
}

// Payment records one payment against an enrollment
type Payment struct {
	gorm.Model
	EnrollmentID uint      `json:"enrollment_id" gorm:"index;not null"`
	Amount       float64   `json:"amount" gorm:"not null"`
	PaymentDate  time.Time `json:"payment_date"`
}
