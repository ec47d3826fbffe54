package notify

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type discordChannel struct {
	session   *discordgo.Session
	webhookID string
	token     string
}

// NewDiscordChannel posts through a channel webhook, no bot token required.
func NewDiscordChannel(webhookID, token string) (Channel, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, err
	}
	return discordChannel{
		session:   session,
		webhookID: webhookID,
		token:     token,
	}, nil
}

func (c discordChannel) Name() string {
	return "discord"
}

func (c discordChannel) Send(ctx context.Context, event Event) error {
	_, err := c.session.WebhookExecute(c.webhookID, c.token, false, &discordgo.WebhookParams{
		Content: event.Text(),
	}, discordgo.WithContext(ctx))
	return err
}
