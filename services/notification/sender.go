package notification

import (
	"fmt"
	"strings"

	"chef-catering/logger"
)

// EmailSender delivers one rendered message. Real delivery (SMTP, an email
// API) is an external collaborator; the shipped implementation only logs.
type EmailSender interface {
	Send(recipients []string, subject, body string) error
}

// LogSender writes outgoing mail to the application log. Useful in
// development and as the default when no provider is configured.
type LogSender struct{}

func (LogSender) Send(recipients []string, subject, body string) error {
	logger.Info(fmt.Sprintf("📧 Email to %s: %s", strings.Join(recipients, ", "), subject))
	logger.Debug(body)
	return nil
}
