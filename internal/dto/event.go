package dto

import "time"

type EventRequest struct {
	Title          string    `json:"title" validate:"required,max=200"`
	Description    string    `json:"description" validate:"required"`
	Location       string    `json:"location" validate:"required,max=300"`
	StartTime      time.Time `json:"start_time" validate:"required"`
	EndTime        time.Time `json:"end_time" validate:"required"`
	IsPublic       *bool     `json:"is_public"`
	InvitedUserIDs []uint    `json:"invited_user_ids"`
}

// Public returns the requested visibility, defaulting to public when the
// field is omitted.
func (r EventRequest) Public() bool {
	if r.IsPublic == nil {
		return true
	}
	return *r.IsPublic
}

// EventFilter narrows and orders the event listing before pagination.
type EventFilter struct {
	Location  string `query:"location"`
	Organizer string `query:"organizer"`
	Search    string `query:"search"`
	IsPublic  *bool  `query:"is_public"`
	Ordering  string `query:"ordering"`
	Page      int    `query:"page"`
	PageSize  int    `query:"page_size"`
}

type OrganizerResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

type EventResponse struct {
	ID            uint              `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Organizer     OrganizerResponse `json:"organizer"`
	Location      string            `json:"location"`
	StartTime     time.Time         `json:"start_time"`
	EndTime       time.Time         `json:"end_time"`
	IsPublic      bool              `json:"is_public"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	RSVPCount     int64             `json:"rsvp_count"`
	AverageRating *float64          `json:"average_rating"`
}

type EventDetailResponse struct {
	EventResponse
	InvitedUsers []OrganizerResponse `json:"invited_users"`
}
