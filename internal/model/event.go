package model

import (
	"time"
)

type Event struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Title        string    `gorm:"not null"`
	Description  string    `gorm:"not null"`
	Location     string    `gorm:"not null"`
	StartTime    time.Time `gorm:"not null;index"`
	EndTime      time.Time `gorm:"not null"`
	IsPublic     bool      `gorm:"not null;default:true"`
	OrganizerID  uint      `gorm:"not null;index"`
	Organizer    User
	InvitedUsers []User   `gorm:"many2many:event_invited_users;constraint:OnDelete:CASCADE"`
	RSVPs        []RSVP   `gorm:"constraint:OnDelete:CASCADE"`
	Reviews      []Review `gorm:"constraint:OnDelete:CASCADE"`
}

// Invited reports whether the user is on the event's invite list. It only
// sees invitees that were preloaded along with the event.
func (e Event) Invited(userID uint) bool {
	for _, u := range e.InvitedUsers {
		if u.ID == userID {
			return true
		}
	}
	return false
}
