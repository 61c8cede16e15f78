package dto

import (
	"fmt"

	"learnity/models"
)

// UserModel is the transport shape for a user profile
type UserModel struct {
	UserID            uint   `json:"user_id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	DisplayName       string `json:"display_name"`
	Email             string `json:"email"`
	Bio               string `json:"bio"`
	ProfilePictureURL string `json:"profile_picture_url"`
	Role              string `json:"role"`
}

// ContactMessage is the inbound contact-us payload; it has no entity.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func UserFromEntity(u models.User) UserModel {
	return UserModel{
		UserID:            u.ID,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		DisplayName:       fmt.Sprintf("%s %s", u.FirstName, u.LastName),
		Email:             u.Email,
		Bio:               u.Bio,
		ProfilePictureURL: u.ProfilePictureURL,
		Role:              u.Role,
	}
}
