package service

import (
	"encoding/json"

	"github.com/gatherly/backend/internal/client"
	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/model"
	"github.com/sirupsen/logrus"
)

// Notifier enqueues notification jobs. Every method is fire-and-forget: a
// failed enqueue is logged and dropped so it can never fail the request
// that triggered it.
type Notifier interface {
	RSVPConfirmation(event model.Event, rsvp model.RSVP, user model.User)
	ReviewReceived(event model.Event, review model.Review, reviewer model.User)
	EventUpdated(event model.Event, attendees []model.RSVP)
}

type notifier struct {
	queueClient client.QueueClient
}

func newNotifier(queueClient client.QueueClient) Notifier {
	return &notifier{queueClient: queueClient}
}

func (n *notifier) RSVPConfirmation(event model.Event, rsvp model.RSVP, user model.User) {
	n.enqueue(dto.NotificationJob{
		Kind:          dto.NotificationRSVPConfirmation,
		EventID:       event.ID,
		EventTitle:    event.Title,
		EventLocation: event.Location,
		StartTime:     event.StartTime,
		EndTime:       event.EndTime,
		Recipient:     user.Email,
		RecipientName: user.Username,
		RSVPStatus:    string(rsvp.Status),
	})
}

func (n *notifier) ReviewReceived(event model.Event, review model.Review, reviewer model.User) {
	n.enqueue(dto.NotificationJob{
		Kind:          dto.NotificationReviewReceived,
		EventID:       event.ID,
		EventTitle:    event.Title,
		EventLocation: event.Location,
		StartTime:     event.StartTime,
		EndTime:       event.EndTime,
		Recipient:     event.Organizer.Email,
		RecipientName: event.Organizer.Username,
		ReviewerName:  reviewer.Username,
		Rating:        review.Rating,
		Comment:       review.Comment,
	})
}

func (n *notifier) EventUpdated(event model.Event, attendees []model.RSVP) {
	for _, rsvp := range attendees {
		n.enqueue(dto.NotificationJob{
			Kind:          dto.NotificationEventUpdated,
			EventID:       event.ID,
			EventTitle:    event.Title,
			EventLocation: event.Location,
			StartTime:     event.StartTime,
			EndTime:       event.EndTime,
			Recipient:     rsvp.User.Email,
			RecipientName: rsvp.User.Username,
			RSVPStatus:    string(rsvp.Status),
		})
	}
}

func (n *notifier) enqueue(job dto.NotificationJob) {
	payload, err := json.Marshal(job)
	if err != nil {
		logrus.Errorf("Error marshaling %s job: %v", job.Kind, err)
		return
	}

	if err := n.queueClient.Publish(payload); err != nil {
		logrus.Errorf("Error enqueueing %s job for %s: %v", job.Kind, job.Recipient, err)
	}
}
