package repository

import (
	"strings"

	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/model"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event model.Event) (model.Event, error)
	GetByID(id uint) (model.Event, error)
	List(filter dto.EventFilter, viewer *model.User) ([]model.Event, int64, error)
	Save(event model.Event) (model.Event, error)
	ReplaceInvitedUsers(event model.Event, users []model.User) error
	Delete(event model.Event) error
}

type event struct {
	db *gorm.DB
}

func newEventRepository(db *gorm.DB) EventRepository {
	return &event{
		db: db,
	}
}

func (e *event) Create(event model.Event) (model.Event, error) {
	result := e.db.Create(&event)
	if result.Error != nil {
		return model.Event{}, wrapDBError(result.Error)
	}

	return event, nil
}

func (e *event) GetByID(id uint) (model.Event, error) {
	var event model.Event
	result := e.db.Preload("Organizer").Preload("InvitedUsers").First(&event, id)
	if result.Error != nil {
		return model.Event{}, wrapDBError(result.Error)
	}

	return event, nil
}

// List returns the page of events visible to the viewer that match the
// filter, together with the total match count. A nil viewer only sees
// public events.
func (e *event) List(filter dto.EventFilter, viewer *model.User) ([]model.Event, int64, error) {
	query := e.db.Model(&model.Event{})

	if viewer == nil {
		query = query.Where("is_public = ?", true)
	} else {
		invited := e.db.Table("event_invited_users").
			Select("event_id").
			Where("user_id = ?", viewer.ID)
		query = query.Where("is_public = ? OR organizer_id = ? OR id IN (?)", true, viewer.ID, invited)
	}

	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}
	if filter.Organizer != "" {
		organizer := e.db.Model(&model.User{}).
			Select("id").
			Where("username = ?", filter.Organizer)
		query = query.Where("organizer_id IN (?)", organizer)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err)
	}

	pagination := dto.NewPagination(filter.Page, filter.PageSize)
	var events []model.Event
	result := query.
		Order(orderClause(filter.Ordering)).
		Offset(pagination.Offset()).
		Limit(pagination.PageSize).
		Preload("Organizer").
		Find(&events)
	if result.Error != nil {
		return nil, 0, wrapDBError(result.Error)
	}

	return events, total, nil
}

var orderings = map[string]string{
	"start_time":  "start_time ASC",
	"-start_time": "start_time DESC",
	"created_at":  "created_at ASC",
	"-created_at": "created_at DESC",
}

func orderClause(ordering string) string {
	if clause, ok := orderings[ordering]; ok {
		return clause
	}
	return "start_time DESC"
}

func (e *event) Save(event model.Event) (model.Event, error) {
	result := e.db.Omit("InvitedUsers").Save(&event)
	if result.Error != nil {
		return model.Event{}, wrapDBError(result.Error)
	}

	return event, nil
}

func (e *event) ReplaceInvitedUsers(event model.Event, users []model.User) error {
	err := e.db.Model(&event).Association("InvitedUsers").Replace(users)
	if err != nil {
		return wrapDBError(err)
	}

	return nil
}

// Delete removes the event together with its RSVPs, reviews and invite
// rows. The explicit deletes keep the cascade working on databases where
// the schema-level constraint is not present.
func (e *event) Delete(event model.Event) error {
	err := e.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", event.ID).Delete(&model.RSVP{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM event_invited_users WHERE event_id = ?", event.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Event{}, event.ID).Error
	})
	if err != nil {
		return wrapDBError(err)
	}

	return nil
}
