package dto

import "time"

type NotificationKind string

const (
	NotificationRSVPConfirmation NotificationKind = "rsvp_confirmation"
	NotificationReviewReceived   NotificationKind = "review_notification"
	NotificationEventUpdated     NotificationKind = "event_updated"
)

// NotificationJob is the payload placed on the notification queue. It is
// self-contained so the worker can render an email without further lookups.
type NotificationJob struct {
	Kind           NotificationKind `json:"kind"`
	EventID        uint             `json:"event_id"`
	EventTitle     string           `json:"event_title"`
	EventLocation  string           `json:"event_location"`
	StartTime      time.Time        `json:"start_time"`
	EndTime        time.Time        `json:"end_time"`
	Recipient      string           `json:"recipient"`
	RecipientName  string           `json:"recipient_name"`
	RSVPStatus     string           `json:"rsvp_status,omitempty"`
	ReviewerName   string           `json:"reviewer_name,omitempty"`
	Rating         int              `json:"rating,omitempty"`
	Comment        string           `json:"comment,omitempty"`
}
