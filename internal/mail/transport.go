package mail

import (
	"context"
	"crmdigest/internal/models"
	"crmdigest/internal/providers"
	"crmdigest/internal/structures"
	"fmt"

	"gopkg.in/gomail.v2"
)

type TransportInterface interface {
	Send(ctx context.Context, subject, html string, recipients []string) error
}

type SmtpTransport struct {
	dialer *gomail.Dialer
	from   string
	logger providers.Logger
}

func NewSmtpTransport(conf *structures.Config, logger providers.Logger) TransportInterface {
	return &SmtpTransport{
		dialer: gomail.NewDialer(conf.Mail.Host, conf.Mail.Port, conf.Mail.Username, conf.Mail.Password),
		from:   conf.Mail.From,
		logger: logger,
	}
}

// Send delivers one message to all recipients. The SMTP exchange itself is
// not interruptible; a cancelled ctx only stops waiting for it.
func (t *SmtpTransport) Send(ctx context.Context, subject, html string, recipients []string) error {
	if len(recipients) == 0 {
		return models.ErrNoRecipients
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", t.from)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	done := make(chan error, 1)
	go func() {
		done <- t.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.logger.Errorf(providers.TypeMail, "Sending %q to %d recipients failed: %s", subject, len(recipients), err)
			return fmt.Errorf("send mail: %w", err)
		}
		t.logger.Infof(providers.TypeMail, "Sent %q to %d recipients", subject, len(recipients))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
