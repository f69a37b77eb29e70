package service

import (
	"fmt"

	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/model"
	"github.com/gatherly/backend/internal/policy"
)

// policyDenied turns a policy denial into the matching sentinel error:
// anonymous actors get an authentication failure, everyone else an
// authorization failure.
func policyDenied(actor *model.User, decision policy.Decision) error {
	if actor == nil {
		return fmt.Errorf("%w: %s", dto.ErrNotAuthenticated, decision.Reason)
	}
	return fmt.Errorf("%w: %s", dto.ErrNotAuthorized, decision.Reason)
}

func organizerResponse(user model.User) dto.OrganizerResponse {
	return dto.OrganizerResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
	}
}

func rsvpResponse(rsvp model.RSVP, event model.Event, user model.User) dto.RSVPResponse {
	return dto.RSVPResponse{
		ID:         rsvp.ID,
		Event:      event.ID,
		EventTitle: event.Title,
		User:       organizerResponse(user),
		Status:     string(rsvp.Status),
		CreatedAt:  rsvp.CreatedAt,
		UpdatedAt:  rsvp.UpdatedAt,
	}
}

func reviewResponse(review model.Review, event model.Event, user model.User) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:         review.ID,
		Event:      event.ID,
		EventTitle: event.Title,
		User:       organizerResponse(user),
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}
