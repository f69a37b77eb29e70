package service

import (
	"errors"
	"fmt"

	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/model"
	"github.com/gatherly/backend/internal/policy"
	"github.com/gatherly/backend/internal/repository"
)

type RSVPService interface {
	CreateRSVP(actor model.User, eventID uint, request dto.RSVPRequest) (dto.RSVPResponse, error)
	UpdateRSVP(actor model.User, eventID, userID uint, request dto.RSVPRequest) (dto.RSVPResponse, error)
}

type rsvpService struct {
	eventRepository repository.EventRepository
	rsvpRepository  repository.RSVPRepository
	notifier        Notifier
}

func newRSVPService(eventRepository repository.EventRepository, rsvpRepository repository.RSVPRepository, notifier Notifier) RSVPService {
	return &rsvpService{
		eventRepository: eventRepository,
		rsvpRepository:  rsvpRepository,
		notifier:        notifier,
	}
}

func (r *rsvpService) CreateRSVP(actor model.User, eventID uint, request dto.RSVPRequest) (dto.RSVPResponse, error) {
	event, err := r.eventRepository.GetByID(eventID)
	if err != nil {
		return dto.RSVPResponse{}, err
	}

	if decision := policy.Decide(&actor, policy.RSVPCreate, event); !decision.Allowed {
		return dto.RSVPResponse{}, policyDenied(&actor, decision)
	}

	status := model.RSVPStatus(request.Status)
	if !status.Valid() {
		return dto.RSVPResponse{}, fmt.Errorf("%w: invalid status, choose from Going, Maybe, Not Going", dto.ErrValidation)
	}

	// Fast-path duplicate check; the unique index on (event_id, user_id)
	// is the source of truth under concurrency.
	if _, err := r.rsvpRepository.GetByEventAndUser(eventID, actor.ID); err == nil {
		return dto.RSVPResponse{}, fmt.Errorf("%w: already RSVP'd to this event, use the update endpoint", dto.ErrConflict)
	} else if !errors.Is(err, dto.ErrNotFound) {
		return dto.RSVPResponse{}, err
	}

	rsvp, err := r.rsvpRepository.Create(model.RSVP{
		EventID: eventID,
		UserID:  actor.ID,
		Status:  status,
	})
	if err != nil {
		if errors.Is(err, dto.ErrConflict) {
			return dto.RSVPResponse{}, fmt.Errorf("%w: already RSVP'd to this event, use the update endpoint", dto.ErrConflict)
		}
		return dto.RSVPResponse{}, err
	}

	r.notifier.RSVPConfirmation(event, rsvp, actor)

	return rsvpResponse(rsvp, event, actor), nil
}

func (r *rsvpService) UpdateRSVP(actor model.User, eventID, userID uint, request dto.RSVPRequest) (dto.RSVPResponse, error) {
	event, err := r.eventRepository.GetByID(eventID)
	if err != nil {
		return dto.RSVPResponse{}, err
	}

	// Ownership is decided from the addressed (event, user) pair so that a
	// foreign user id yields a denial rather than a lookup miss.
	if decision := policy.Decide(&actor, policy.RSVPUpdate, model.RSVP{EventID: eventID, UserID: userID}); !decision.Allowed {
		return dto.RSVPResponse{}, policyDenied(&actor, decision)
	}

	rsvp, err := r.rsvpRepository.GetByEventAndUser(eventID, userID)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return dto.RSVPResponse{}, fmt.Errorf("%w: RSVP not found, RSVP first", dto.ErrNotFound)
		}
		return dto.RSVPResponse{}, err
	}

	status := model.RSVPStatus(request.Status)
	if !status.Valid() {
		return dto.RSVPResponse{}, fmt.Errorf("%w: invalid status, choose from Going, Maybe, Not Going", dto.ErrValidation)
	}

	rsvp.Status = status
	rsvp, err = r.rsvpRepository.Save(rsvp)
	if err != nil {
		return dto.RSVPResponse{}, err
	}

	r.notifier.RSVPConfirmation(event, rsvp, actor)

	return rsvpResponse(rsvp, event, actor), nil
}
