package repository

import (
	"errors"
	"fmt"

	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Repositories interface {
	User() UserRepository
	Event() EventRepository
	RSVP() RSVPRepository
	Review() ReviewRepository
}

type repositories struct {
	userRepository   UserRepository
	eventRepository  EventRepository
	rsvpRepository   RSVPRepository
	reviewRepository ReviewRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	err := db.AutoMigrate(&model.User{}, &model.Event{}, &model.RSVP{}, &model.Review{})
	if err != nil {
		logrus.Panic(err)
	}
	userRepository := newUserRepository(db)
	eventRepository := newEventRepository(db)
	rsvpRepository := newRSVPRepository(db)
	reviewRepository := newReviewRepository(db)
	return &repositories{
		userRepository:   userRepository,
		eventRepository:  eventRepository,
		rsvpRepository:   rsvpRepository,
		reviewRepository: reviewRepository,
	}
}

func (r repositories) User() UserRepository {
	return r.userRepository
}

func (r repositories) Event() EventRepository {
	return r.eventRepository
}

func (r repositories) RSVP() RSVPRepository {
	return r.rsvpRepository
}

func (r repositories) Review() ReviewRepository {
	return r.reviewRepository
}

// wrapDBError translates gorm errors into the dto taxonomy. The duplicated
// key case relies on gorm's TranslateError being enabled on the connection.
func wrapDBError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", dto.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", dto.ErrConflict, err)
	default:
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}
}
