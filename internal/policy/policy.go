// Package policy decides whether an actor may perform an action on a
// resource. It is deliberately free of storage and transport concerns:
// callers load the resource first, then ask for a decision.
package policy

import (
	"github.com/gatherly/backend/internal/model"
)

type Action int

const (
	EventCreate Action = iota
	EventRead
	EventUpdate
	EventDelete
	RSVPCreate
	RSVPUpdate
	ReviewCreate
	ReviewUpdate
)

type Reason string

const (
	ReasonAllowed          Reason = "allowed"
	ReasonNotAuthenticated Reason = "not_authenticated"
	ReasonNotOrganizer     Reason = "not_organizer"
	ReasonNotInvited       Reason = "not_invited"
	ReasonNotOwner         Reason = "not_owner"
	ReasonUnknownResource  Reason = "unknown_resource"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision {
	return Decision{Allowed: true, Reason: ReasonAllowed}
}

func deny(reason Reason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Decide evaluates the (actor, action, resource) triple. A nil actor is an
// unauthenticated request. The resource must match the action: an Event for
// event and create-type actions, an RSVP for RSVPUpdate, a Review for
// ReviewUpdate.
func Decide(actor *model.User, action Action, resource interface{}) Decision {
	switch action {
	case EventCreate:
		if actor == nil {
			return deny(ReasonNotAuthenticated)
		}
		return allow()
	case EventRead:
		event, ok := resource.(model.Event)
		if !ok {
			return deny(ReasonUnknownResource)
		}
		return readEvent(actor, event)
	case EventUpdate, EventDelete:
		event, ok := resource.(model.Event)
		if !ok {
			return deny(ReasonUnknownResource)
		}
		return writeEvent(actor, event)
	case RSVPCreate, ReviewCreate:
		event, ok := resource.(model.Event)
		if !ok {
			return deny(ReasonUnknownResource)
		}
		if actor == nil {
			return deny(ReasonNotAuthenticated)
		}
		return readEvent(actor, event)
	case RSVPUpdate:
		rsvp, ok := resource.(model.RSVP)
		if !ok {
			return deny(ReasonUnknownResource)
		}
		return ownerOnly(actor, rsvp.UserID)
	case ReviewUpdate:
		review, ok := resource.(model.Review)
		if !ok {
			return deny(ReasonUnknownResource)
		}
		return ownerOnly(actor, review.UserID)
	default:
		return deny(ReasonUnknownResource)
	}
}

// readEvent grants access to public events for everyone, and to private
// events for the organizer and invited users only.
func readEvent(actor *model.User, event model.Event) Decision {
	if event.IsPublic {
		return allow()
	}
	if actor == nil {
		return deny(ReasonNotAuthenticated)
	}
	if event.OrganizerID == actor.ID {
		return allow()
	}
	if event.Invited(actor.ID) {
		return allow()
	}
	return deny(ReasonNotInvited)
}

func writeEvent(actor *model.User, event model.Event) Decision {
	if actor == nil {
		return deny(ReasonNotAuthenticated)
	}
	if event.OrganizerID != actor.ID {
		return deny(ReasonNotOrganizer)
	}
	return allow()
}

func ownerOnly(actor *model.User, ownerID uint) Decision {
	if actor == nil {
		return deny(ReasonNotAuthenticated)
	}
	if actor.ID != ownerID {
		return deny(ReasonNotOwner)
	}
	return allow()
}
