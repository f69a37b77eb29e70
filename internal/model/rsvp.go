package model

import "time"

type RSVP struct {
	ID         uint       `gorm:"primarykey"`
	EventID    uint       `gorm:"not null;uniqueIndex:idx_rsvp_event_user"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_rsvp_event_user"`
	Status     RSVPStatus `gorm:"not null;default:Going"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	RemindedAt *time.Time
	Event      Event
	User       User
}
