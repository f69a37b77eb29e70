package worker

import (
	"fmt"

	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/model"
)

const emailTimeLayout = "January 2, 2006 at 3:04 PM"

func renderEmail(job dto.NotificationJob) (subject, body string, err error) {
	switch job.Kind {
	case dto.NotificationRSVPConfirmation:
		subject = fmt.Sprintf("RSVP Confirmation: %s", job.EventTitle)
		body = fmt.Sprintf(
			"Hi %s,\n\n"+
				"Thank you for RSVPing to %q!\n\n"+
				"Status: %s\n"+
				"Event Details:\n"+
				"- Location: %s\n"+
				"- Start: %s\n"+
				"- End: %s\n\n"+
				"We look forward to seeing you there!",
			job.RecipientName, job.EventTitle, job.RSVPStatus,
			job.EventLocation,
			job.StartTime.Format(emailTimeLayout),
			job.EndTime.Format(emailTimeLayout),
		)
	case dto.NotificationReviewReceived:
		subject = fmt.Sprintf("New Review for Your Event: %s", job.EventTitle)
		body = fmt.Sprintf(
			"Hi %s,\n\n"+
				"%s has left a review for your event %q.\n\n"+
				"Rating: %d/5\n"+
				"Comment: %s\n\n"+
				"Keep up the great work!",
			job.RecipientName, job.ReviewerName, job.EventTitle,
			job.Rating, job.Comment,
		)
	case dto.NotificationEventUpdated:
		subject = fmt.Sprintf("Event Updated: %s", job.EventTitle)
		body = fmt.Sprintf(
			"Hi %s,\n\n"+
				"The event %q you RSVP'd to has been updated.\n\n"+
				"Event Details:\n"+
				"- Location: %s\n"+
				"- Start: %s\n"+
				"- End: %s\n\n"+
				"Your RSVP status: %s",
			job.RecipientName, job.EventTitle,
			job.EventLocation,
			job.StartTime.Format(emailTimeLayout),
			job.EndTime.Format(emailTimeLayout),
			job.RSVPStatus,
		)
	default:
		return "", "", fmt.Errorf("unknown notification kind %q", job.Kind)
	}

	return subject, body, nil
}

func renderReminder(rsvp model.RSVP) (subject, body string) {
	event := rsvp.Event
	subject = fmt.Sprintf("Reminder: %s starts tomorrow!", event.Title)
	body = fmt.Sprintf(
		"Hi %s,\n\n"+
			"This is a friendly reminder that the event %q is starting soon!\n\n"+
			"Event Details:\n"+
			"- Location: %s\n"+
			"- Start: %s\n"+
			"- End: %s\n\n"+
			"See you there!",
		rsvp.User.Username, event.Title,
		event.Location,
		event.StartTime.Format(emailTimeLayout),
		event.EndTime.Format(emailTimeLayout),
	)
	return subject, body
}
