package notify

import (
	"context"

	"dashboard-approval-backend/lib/smtp"
)

type emailChannel struct {
	client     smtp.Provider
	recipients []string
}

func NewEmailChannel(client smtp.Provider, recipients []string) Channel {
	return emailChannel{
		client:     client,
		recipients: recipients,
	}
}

func (c emailChannel) Name() string {
	return "email"
}

func (c emailChannel) Send(_ context.Context, event Event) error {
	return c.client.SendEMail(c.recipients, event.Subject(), event.Text())
}
