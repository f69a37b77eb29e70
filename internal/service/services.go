package service

import (
	"github.com/gatherly/backend/internal/client"
	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/repository"
)

type Services interface {
	Auth() AuthService
	User() UserService
	Event() EventService
	RSVP() RSVPService
	Review() ReviewService
}

type services struct {
	authService   AuthService
	userService   UserService
	eventService  EventService
	rsvpService   RSVPService
	reviewService ReviewService
}

func NewServices(repositories repository.Repositories, config dto.Config, clients client.Clients) Services {
	notifier := newNotifier(clients.Queue())
	return &services{
		authService:   newAuthService(repositories.User(), config),
		userService:   newUserService(repositories.User()),
		eventService:  newEventService(repositories.Event(), repositories.User(), repositories.RSVP(), repositories.Review(), notifier),
		rsvpService:   newRSVPService(repositories.Event(), repositories.RSVP(), notifier),
		reviewService: newReviewService(repositories.Event(), repositories.Review(), notifier),
	}
}

func (s services) Auth() AuthService {
	return s.authService
}

func (s services) User() UserService {
	return s.userService
}

func (s services) Event() EventService {
	return s.eventService
}

func (s services) RSVP() RSVPService {
	return s.rsvpService
}

func (s services) Review() ReviewService {
	return s.reviewService
}
