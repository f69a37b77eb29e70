package client

import (
	"github.com/gatherly/backend/internal/dto"
	"github.com/sirupsen/logrus"
)

type Clients interface {
	Queue() QueueClient
	Email() EmailClient
}

type clients struct {
	queueClient QueueClient
	emailClient EmailClient
}

func (c clients) Queue() QueueClient {
	return c.queueClient
}

func (c clients) Email() EmailClient {
	return c.emailClient
}

func NewClients(cfg dto.Config) Clients {
	queueClient, err := NewRabbitMQClient(cfg)
	if err != nil {
		logrus.Panic(err)
	}

	emailClient := NewEmailClient(cfg)

	return &clients{
		queueClient: queueClient,
		emailClient: emailClient,
	}
}
