package initializers

import (
	"dashboard-approval-backend/config"
	"dashboard-approval-backend/lib/smtp"
)

func InitSmtp() smtp.Provider {
	return smtp.NewClient(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
}
