package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Video request lifecycle states
const (
	VideoRequestPending   = "PENDING"
	VideoRequestApproved  = "APPROVED"
	VideoRequestPublished = "PUBLISHED"
	VideoRequestRejected  = "REJECTED"
)

// VideoRequest is a user's request for a video on a given topic
type VideoRequest struct {
	gorm.Model
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	Topic       string         `json:"topic" gorm:"not null"`
	ShortTitle  string         `json:"short_title"`
	Description string         `json:"description" gorm:"type:text;default:''"`
	Status      string         `json:"status" gorm:"default:'PENDING'"` // PENDING, APPROVED, PUBLISHED, REJECTED
	Response    string         `json:"response" gorm:"type:text;default:''"`
	VideoURL    string         `json:"video_url" gorm:"default:''"`
	Metadata    datatypes.JSON `json:"metadata,omitempty"`
	User        *User          `json:"user,omitempty"`
}
