package repository

import (
	"time"

	"github.com/gatherly/backend/internal/model"
	"gorm.io/gorm"
)

type RSVPRepository interface {
	Create(rsvp model.RSVP) (model.RSVP, error)
	GetByEventAndUser(eventID, userID uint) (model.RSVP, error)
	Save(rsvp model.RSVP) (model.RSVP, error)
	CountGoing(eventID uint) (int64, error)
	ListAttending(eventID uint) ([]model.RSVP, error)
	FindReminderCandidates(from, to time.Time) ([]model.RSVP, error)
	MarkReminded(rsvpID uint, at time.Time) error
}

type rsvp struct {
	db *gorm.DB
}

func newRSVPRepository(db *gorm.DB) RSVPRepository {
	return &rsvp{
		db: db,
	}
}

func (r *rsvp) Create(rsvp model.RSVP) (model.RSVP, error) {
	result := r.db.Create(&rsvp)
	if result.Error != nil {
		return model.RSVP{}, wrapDBError(result.Error)
	}

	return rsvp, nil
}

func (r *rsvp) GetByEventAndUser(eventID, userID uint) (model.RSVP, error) {
	var rsvp model.RSVP
	result := r.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&rsvp)
	if result.Error != nil {
		return model.RSVP{}, wrapDBError(result.Error)
	}

	return rsvp, nil
}

func (r *rsvp) Save(rsvp model.RSVP) (model.RSVP, error) {
	result := r.db.Save(&rsvp)
	if result.Error != nil {
		return model.RSVP{}, wrapDBError(result.Error)
	}

	return rsvp, nil
}

func (r *rsvp) CountGoing(eventID uint) (int64, error) {
	var count int64
	result := r.db.Model(&model.RSVP{}).
		Where("event_id = ? AND status = ?", eventID, model.RSVPGoing).
		Count(&count)
	if result.Error != nil {
		return 0, wrapDBError(result.Error)
	}

	return count, nil
}

// ListAttending returns the Going and Maybe RSVPs for an event with their
// users loaded, for notifying attendees about event changes.
func (r *rsvp) ListAttending(eventID uint) ([]model.RSVP, error) {
	var rsvps []model.RSVP
	result := r.db.Preload("User").
		Where("event_id = ? AND status IN ?", eventID, []model.RSVPStatus{model.RSVPGoing, model.RSVPMaybe}).
		Find(&rsvps)
	if result.Error != nil {
		return nil, wrapDBError(result.Error)
	}

	return rsvps, nil
}

// FindReminderCandidates returns Going RSVPs for events starting inside the
// window that have not been reminded yet.
func (r *rsvp) FindReminderCandidates(from, to time.Time) ([]model.RSVP, error) {
	var rsvps []model.RSVP
	result := r.db.Preload("User").Preload("Event").
		Joins("JOIN events ON events.id = rsvps.event_id").
		Where("rsvps.status = ? AND rsvps.reminded_at IS NULL", model.RSVPGoing).
		Where("events.start_time >= ? AND events.start_time <= ?", from, to).
		Find(&rsvps)
	if result.Error != nil {
		return nil, wrapDBError(result.Error)
	}

	return rsvps, nil
}

func (r *rsvp) MarkReminded(rsvpID uint, at time.Time) error {
	result := r.db.Model(&model.RSVP{}).Where("id = ?", rsvpID).Update("reminded_at", at)
	if result.Error != nil {
		return wrapDBError(result.Error)
	}

	return nil
}
