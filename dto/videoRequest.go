package dto

import (
	"fmt"

	"learnity/models"
)

// VideoRequestModel is the transport shape for a video request
type VideoRequestModel struct {
	VideoRequestID uint   `json:"video_request_id"`
	UserID         uint   `json:"user_id" validate:"required"`
	UserName       string `json:"user_name,omitempty"`
	Topic          string `json:"topic" validate:"required"`
	ShortTitle     string `json:"short_title"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	Response       string `json:"response"`
	VideoURL       string `json:"video_url"`
}

// VideoRequestFromEntity maps a video request. Unlike reviews, the
// requester's display name is rendered given-name-first ("Ada, Lovelace").
func VideoRequestFromEntity(v models.VideoRequest) VideoRequestModel {
	m := VideoRequestModel{
		VideoRequestID: v.ID,
		UserID:         v.UserID,
		Topic:          v.Topic,
		ShortTitle:     v.ShortTitle,
		Description:    v.Description,
		Status:         v.Status,
		Response:       v.Response,
		VideoURL:       v.VideoURL,
	}
	if v.User != nil {
		m.UserName = fmt.Sprintf("%s, %s", v.User.FirstName, v.User.LastName)
	}
	return m
}

func VideoRequestsFromEntities(vs []models.VideoRequest) []VideoRequestModel {
	out := make([]VideoRequestModel, 0, len(vs))
	for _, v := range vs {
		out = append(out, VideoRequestFromEntity(v))
	}
	return out
}

// ToEntity maps the writable fields only; the user relation is resolved by
// the persistence layer, never from the payload.
func (m VideoRequestModel) ToEntity() models.VideoRequest {
	v := models.VideoRequest{
		UserID:      m.UserID,
		Topic:       m.Topic,
		ShortTitle:  m.ShortTitle,
		Description: m.Description,
		Status:      m.Status,
		Response:    m.Response,
		VideoURL:    m.VideoURL,
	}
	v.ID = m.VideoRequestID
	return v
}
