package client

import (
	"fmt"

	"github.com/gatherly/backend/internal/dto"
	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"
)

type EmailClient interface {
	Send(to, subject, body string) error
}

type emailClient struct {
	resend *resend.Client
	from   string
}

func NewEmailClient(config dto.Config) EmailClient {
	return &emailClient{
		resend: resend.NewClient(config.ResendAPIKey),
		from:   config.EmailFrom,
	}
}

func (e *emailClient) Send(to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    e.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	sent, err := e.resend.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("sending email to %s: %w", to, err)
	}

	logrus.Infof("Email %s sent to %s", sent.Id, to)
	return nil
}
