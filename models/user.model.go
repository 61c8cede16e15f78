package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email" gorm:"unique;not null"`
	Bio               string `json:"bio" gorm:"type:text;default:''"`
	ProfilePictureURL string `json:"profile_picture_url" gorm:"default:''"`
	Role              string `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	IsDeleted         bool   `gorm:"default:false"`
}
