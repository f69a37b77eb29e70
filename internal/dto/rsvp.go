package dto

import "time"

type RSVPRequest struct {
	Status string `json:"status" validate:"required"`
}

type RSVPResponse struct {
	ID         uint              `json:"id"`
	Event      uint              `json:"event"`
	EventTitle string            `json:"event_title"`
	User       OrganizerResponse `json:"user"`
	Status     string            `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
