package dto

import "time"

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

type ReviewResponse struct {
	ID         uint              `json:"id"`
	Event      uint              `json:"event"`
	EventTitle string            `json:"event_title"`
	User       OrganizerResponse `json:"user"`
	Rating     int               `json:"rating"`
	Comment    string            `json:"comment"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
