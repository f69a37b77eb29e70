// Package worker runs the notification side of the system: it drains the
// queue the API publishes to, renders emails, and sends hourly reminders
// for upcoming events.
package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gatherly/backend/internal/client"
	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

const consumerID = "notification-worker"

type Worker interface {
	Run(ctx context.Context) error
}

type worker struct {
	queueClient    client.QueueClient
	emailClient    client.EmailClient
	rsvpRepository repository.RSVPRepository
}

func NewWorker(clients client.Clients, repositories repository.Repositories) Worker {
	return &worker{
		queueClient:    clients.Queue(),
		emailClient:    clients.Email(),
		rsvpRepository: repositories.RSVP(),
	}
}

func (w *worker) Run(ctx context.Context) error {
	messages, err := w.queueClient.Consume(consumerID)
	if err != nil {
		return err
	}
	defer w.queueClient.StopConsuming(consumerID)

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	w.sendReminders()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case message, ok := <-messages:
			if !ok {
				return nil
			}
			w.handleMessage(message)
		case <-ticker.C:
			w.sendReminders()
		}
	}
}

func (w *worker) handleMessage(message []byte) {
	var job dto.NotificationJob
	if err := json.Unmarshal(message, &job); err != nil {
		logrus.Errorf("Error unmarshaling notification job: %v", err)
		return
	}

	subject, body, err := renderEmail(job)
	if err != nil {
		logrus.Errorf("Error rendering %s email for %s: %v", job.Kind, job.Recipient, err)
		return
	}

	if err := w.emailClient.Send(job.Recipient, subject, body); err != nil {
		logrus.Errorf("Error sending %s email to %s: %v", job.Kind, job.Recipient, err)
		return
	}

	logrus.Infof("Sent %s email to %s for event %d", job.Kind, job.Recipient, job.EventID)
}
