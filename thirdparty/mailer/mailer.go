package mailer

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type sendFunc func(ctx context.Context, msg *mail.Msg) error

// Mailer sends HTML email over SMTP with bounded retries.
type Mailer struct {
	cfg  config.MailConfig
	send sendFunc
}

func New(cfg config.MailConfig) *Mailer {
	m := &Mailer{cfg: cfg}
	m.send = m.dialAndSend
	return m
}

// Send makes up to MaxAttempts delivery attempts, waiting Backoff*attempt
// between them. A message that cannot be built is not retried.
func (m *Mailer) Send(ctx context.Context, msg model.NotificationMessage) error {
	if m.cfg.Host == "" {
		return errors.New("mail host not configured")
	}
	if msg.To == "" {
		return errors.New("notification has no recipient")
	}

	out, err := m.compose(msg)
	if err != nil {
		return err
	}

	attempts := m.cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = m.send(ctx, out)
		if lastErr == nil {
			return nil
		}
		logger.Warn("[Mailer] send attempt failed",
			zap.Int("attempt", attempt),
			zap.String("to", msg.To),
			zap.String("error", lastErr.Error()))

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "send aborted")
		case <-time.After(m.cfg.Backoff * time.Duration(attempt)):
		}
	}
	return errors.Wrapf(lastErr, "send after %d attempts", attempts)
}

// compose builds the message. Header values are encoded by go-mail, so a
// subject carrying CR or LF cannot start a new header.
func (m *Mailer) compose(msg model.NotificationMessage) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.From(m.cfg.From); err != nil {
		return nil, errors.Wrap(err, "set sender")
	}
	if err := out.To(msg.To); err != nil {
		return nil, errors.Wrap(err, "set recipient")
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextHTML, msg.HTML)
	return out, nil
}

func (m *Mailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return errors.Wrap(err, "new smtp client")
	}
	return client.DialAndSendWithContext(ctx, msg)
}
