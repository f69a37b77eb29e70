package worker

import (
	"time"

	"github.com/sirupsen/logrus"
)

// sendReminders emails everyone with a Going RSVP for an event starting in
// the next 24 hours. The reminded_at marker keeps it to one reminder per
// RSVP across runs.
func (w *worker) sendReminders() {
	now := time.Now()
	candidates, err := w.rsvpRepository.FindReminderCandidates(now, now.Add(24*time.Hour))
	if err != nil {
		logrus.Errorf("Error finding reminder candidates: %v", err)
		return
	}

	sent := 0
	for _, rsvp := range candidates {
		subject, body := renderReminder(rsvp)
		if err := w.emailClient.Send(rsvp.User.Email, subject, body); err != nil {
			logrus.Errorf("Failed to send reminder to %s: %v", rsvp.User.Email, err)
			continue
		}
		if err := w.rsvpRepository.MarkReminded(rsvp.ID, now); err != nil {
			logrus.Errorf("Failed to mark RSVP %d as reminded: %v", rsvp.ID, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		logrus.Infof("Sent %d event reminders", sent)
	}
}
