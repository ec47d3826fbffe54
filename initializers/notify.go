package initializers

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"dashboard-approval-backend/config"
	"dashboard-approval-backend/lib/notify"
	"dashboard-approval-backend/lib/smtp"
)

const notifyTimeout = 15 * time.Second

// InitNotify registers every configured channel for the submission event.
func InitNotify(mailer smtp.Provider, rdb *redis.Client) *notify.Dispatcher {
	dispatcher := notify.NewDispatcher(notifyTimeout)
	event := notify.EventDashboardItemSubmitted

	if len(config.Conf.Smtp.Reviewers) != 0 && config.Conf.Smtp.Host != "" {
		dispatcher.Register(event, notify.NewEmailChannel(mailer, config.Conf.Smtp.Reviewers))
	}
	if config.Conf.Slack.WebhookURL != "" {
		dispatcher.Register(event, notify.NewSlackChannel(config.Conf.Slack.WebhookURL, &http.Client{Timeout: notifyTimeout}))
	}
	if config.Conf.Discord.WebhookID != "" && config.Conf.Discord.WebhookToken != "" {
		channel, err := notify.NewDiscordChannel(config.Conf.Discord.WebhookID, config.Conf.Discord.WebhookToken)
		if err != nil {
			log.WithError(err).Error("discord notification channel init failed")
		} else {
			dispatcher.Register(event, channel)
		}
	}
	if rdb != nil && config.Conf.Redis.EventStream != "" {
		dispatcher.Register(event, notify.NewRedisStreamChannel(rdb, config.Conf.Redis.EventStream))
	}
	return dispatcher
}
