package service

import (
	"fmt"
	"time"

	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/model"
	"github.com/gatherly/backend/internal/policy"
	"github.com/gatherly/backend/internal/repository"
)

type EventService interface {
	CreateEvent(actor model.User, request dto.EventRequest) (dto.EventDetailResponse, error)
	GetEvent(actor *model.User, id uint) (dto.EventDetailResponse, error)
	ListEvents(actor *model.User, filter dto.EventFilter) (dto.Page, error)
	UpdateEvent(actor model.User, id uint, request dto.EventRequest) (dto.EventDetailResponse, error)
	DeleteEvent(actor model.User, id uint) error
}

type eventService struct {
	eventRepository  repository.EventRepository
	userRepository   repository.UserRepository
	rsvpRepository   repository.RSVPRepository
	reviewRepository repository.ReviewRepository
	notifier         Notifier
}

func newEventService(
	eventRepository repository.EventRepository,
	userRepository repository.UserRepository,
	rsvpRepository repository.RSVPRepository,
	reviewRepository repository.ReviewRepository,
	notifier Notifier,
) EventService {
	return &eventService{
		eventRepository:  eventRepository,
		userRepository:   userRepository,
		rsvpRepository:   rsvpRepository,
		reviewRepository: reviewRepository,
		notifier:         notifier,
	}
}

func (e *eventService) CreateEvent(actor model.User, request dto.EventRequest) (dto.EventDetailResponse, error) {
	if err := validateEventTimes(request, true); err != nil {
		return dto.EventDetailResponse{}, err
	}

	invited, err := e.resolveInvitedUsers(request.InvitedUserIDs)
	if err != nil {
		return dto.EventDetailResponse{}, err
	}

	event, err := e.eventRepository.Create(model.Event{
		Title:        request.Title,
		Description:  request.Description,
		Location:     request.Location,
		StartTime:    request.StartTime,
		EndTime:      request.EndTime,
		IsPublic:     request.Public(),
		OrganizerID:  actor.ID,
		InvitedUsers: invited,
	})
	if err != nil {
		return dto.EventDetailResponse{}, err
	}

	event.Organizer = actor
	return e.detailResponse(event)
}

func (e *eventService) GetEvent(actor *model.User, id uint) (dto.EventDetailResponse, error) {
	event, err := e.eventRepository.GetByID(id)
	if err != nil {
		return dto.EventDetailResponse{}, err
	}

	if decision := policy.Decide(actor, policy.EventRead, event); !decision.Allowed {
		return dto.EventDetailResponse{}, policyDenied(actor, decision)
	}

	return e.detailResponse(event)
}

func (e *eventService) ListEvents(actor *model.User, filter dto.EventFilter) (dto.Page, error) {
	events, total, err := e.eventRepository.List(filter, actor)
	if err != nil {
		return dto.Page{}, err
	}

	results := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		response, err := e.summaryResponse(event)
		if err != nil {
			return dto.Page{}, err
		}
		results = append(results, response)
	}

	return dto.Page{Count: total, Results: results}, nil
}

func (e *eventService) UpdateEvent(actor model.User, id uint, request dto.EventRequest) (dto.EventDetailResponse, error) {
	event, err := e.eventRepository.GetByID(id)
	if err != nil {
		return dto.EventDetailResponse{}, err
	}

	if decision := policy.Decide(&actor, policy.EventUpdate, event); !decision.Allowed {
		return dto.EventDetailResponse{}, policyDenied(&actor, decision)
	}

	if err := validateEventTimes(request, false); err != nil {
		return dto.EventDetailResponse{}, err
	}

	event.Title = request.Title
	event.Description = request.Description
	event.Location = request.Location
	event.StartTime = request.StartTime
	event.EndTime = request.EndTime
	event.IsPublic = request.Public()

	event, err = e.eventRepository.Save(event)
	if err != nil {
		return dto.EventDetailResponse{}, err
	}

	if request.InvitedUserIDs != nil {
		invited, err := e.resolveInvitedUsers(request.InvitedUserIDs)
		if err != nil {
			return dto.EventDetailResponse{}, err
		}
		if err := e.eventRepository.ReplaceInvitedUsers(event, invited); err != nil {
			return dto.EventDetailResponse{}, err
		}
		event.InvitedUsers = invited
	}

	attendees, err := e.rsvpRepository.ListAttending(event.ID)
	if err == nil {
		e.notifier.EventUpdated(event, attendees)
	}

	return e.detailResponse(event)
}

func (e *eventService) DeleteEvent(actor model.User, id uint) error {
	event, err := e.eventRepository.GetByID(id)
	if err != nil {
		return err
	}

	if decision := policy.Decide(&actor, policy.EventDelete, event); !decision.Allowed {
		return policyDenied(&actor, decision)
	}

	return e.eventRepository.Delete(event)
}

// validateEventTimes enforces the time ordering invariant. The past-start
// check only applies on create: events that already started must stay
// editable.
func validateEventTimes(request dto.EventRequest, creating bool) error {
	if !request.EndTime.After(request.StartTime) {
		return fmt.Errorf("%w: end_time must be after start_time", dto.ErrValidation)
	}
	if creating && request.StartTime.Before(time.Now()) {
		return fmt.Errorf("%w: start_time cannot be in the past", dto.ErrValidation)
	}
	return nil
}

func (e *eventService) resolveInvitedUsers(ids []uint) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	users, err := e.userRepository.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(users) != len(uniqueIDs(ids)) {
		return nil, fmt.Errorf("%w: invited_user_ids contains unknown users", dto.ErrValidation)
	}

	return users, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func (e *eventService) summaryResponse(event model.Event) (dto.EventResponse, error) {
	rsvpCount, err := e.rsvpRepository.CountGoing(event.ID)
	if err != nil {
		return dto.EventResponse{}, err
	}

	averageRating, err := e.reviewRepository.AverageRating(event.ID)
	if err != nil {
		return dto.EventResponse{}, err
	}

	return dto.EventResponse{
		ID:            event.ID,
		Title:         event.Title,
		Description:   event.Description,
		Organizer:     organizerResponse(event.Organizer),
		Location:      event.Location,
		StartTime:     event.StartTime,
		EndTime:       event.EndTime,
		IsPublic:      event.IsPublic,
		CreatedAt:     event.CreatedAt,
		UpdatedAt:     event.UpdatedAt,
		RSVPCount:     rsvpCount,
		AverageRating: averageRating,
	}, nil
}

func (e *eventService) detailResponse(event model.Event) (dto.EventDetailResponse, error) {
	summary, err := e.summaryResponse(event)
	if err != nil {
		return dto.EventDetailResponse{}, err
	}

	invited := make([]dto.OrganizerResponse, 0, len(event.InvitedUsers))
	for _, user := range event.InvitedUsers {
		invited = append(invited, organizerResponse(user))
	}

	return dto.EventDetailResponse{
		EventResponse: summary,
		InvitedUsers:  invited,
	}, nil
}
