package dto

import (
	"time"

	"learnity/models"
)

// EnrollmentModel is the transport shape for an enrollment aggregate
type EnrollmentModel struct {
	EnrollmentID   uint          `json:"enrollment_id"`
	UserID         uint          `json:"user_id" validate:"required"`
	CourseID       uint          `json:"course_id" validate:"required"`
	CourseTitle    string        `json:"course_title,omitempty"`
	EnrollmentDate time.Time     `json:"enrollment_date"`
	CurrentPayment *PaymentModel `json:"current_payment,omitempty"`
}

type PaymentModel struct {
	PaymentID    uint      `json:"payment_id"`
	EnrollmentID uint      `json:"enrollment_id"`
	Amount       float64   `json:"amount"`
	PaymentDate  time.Time `json:"payment_date"`
}

// EnrollmentFromEntity maps an enrollment with its payments. The current
// payment is the one with the latest payment date, or absent when the
// enrollment has no payments at all.
func EnrollmentFromEntity(e models.Enrollment) EnrollmentModel {
	m := EnrollmentModel{
		EnrollmentID:   e.ID,
		UserID:         e.UserID,
		CourseID:       e.CourseID,
		EnrollmentDate: e.EnrollmentDate,
	}
	if e.Course != nil {
		m.CourseTitle = e.Course.Title
	}
	if p := currentPayment(e.Payments); p != nil {
		pm := PaymentFromEntity(*p)
		m.CurrentPayment = &pm
	}
	return m
}

func EnrollmentsFromEntities(es []models.Enrollment) []EnrollmentModel {
	out := make([]EnrollmentModel, 0, len(es))
	for _, e := range es {
		out = append(out, EnrollmentFromEntity(e))
	}
	return out
}

func currentPayment(payments []models.Payment) *models.Payment {
	var latest *models.Payment
	for i := range payments {
		if latest == nil || payments[i].PaymentDate.After(latest.PaymentDate) {
			latest = &payments[i]
		}
	}
	return latest
}

func PaymentFromEntity(p models.Payment) PaymentModel {
	return PaymentModel{
		PaymentID:    p.ID,
		EnrollmentID: p.EnrollmentID,
		Amount:       p.Amount,
		PaymentDate:  p.PaymentDate,
	}
}

func (m EnrollmentModel) ToEntity() models.Enrollment {
	e := models.Enrollment{
		UserID:         m.UserID,
		CourseID:       m.CourseID,
		EnrollmentDate: m.EnrollmentDate,
	}
	e.ID = m.EnrollmentID
	return e
}
