package services

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors returned by the domain services. Controllers map these to
// HTTP status codes; anything else is a server error.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("record already exists")
	ErrValidation = errors.New("invalid input")
)

// translateNotFound converts the ORM's absence signal into the service-level
// sentinel so callers never depend on gorm directly.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
