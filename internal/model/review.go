package model

import "time"

type Review struct {
	ID        uint `gorm:"primarykey"`
	EventID   uint `gorm:"not null;uniqueIndex:idx_review_event_user"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_review_event_user"`
	Rating    int  `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
	Event     Event
	User      User
}
