package smtp

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	SendEMail(to []string, subject, message string) error
}

func NewClient(user, password, host, port string, tlsEnabled bool) Provider {
	return &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
	}
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(to []string, subject, message string) (err error) {
	logger := log.WithField("recipients", strings.Join(to, ","))
	if !i.IsConfigured() {
		logger.Warn("email not sent: smtp client is not configured")
		return nil
	}
	if len(to) == 0 {
		return nil
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	body := strings.NewReader(fmt.Sprintf("Subject: Campaign dashboard - %s\n%s\r\n%s\r\n", subject, mimeHeaders, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, to, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, to, body)
	}
	if err != nil {
		logger.WithError(err).Error("email sending failed")
		return err
	}
	logger.Info("email sent")
	return nil
}
