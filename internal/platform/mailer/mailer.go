// Package mailer delivers outgoing email. The transport is picked from
// configuration: log (development), smtp (direct) or amqp (queued for the
// mail worker).
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/platform/config"
)

const (
	TransportLog  = "log"
	TransportSMTP = "smtp"
	TransportAMQP = "amqp"
)

// Publisher queues a message for asynchronous delivery.
type Publisher interface {
	PublishMail(ctx context.Context, msg domain.MailMessage) error
}

// New returns the mailer for cfg.MailTransport. publisher is only used by
// the amqp transport and may be nil otherwise.
func New(cfg *config.Config, publisher Publisher) (portssvc.Mailer, error) {
	switch cfg.MailTransport {
	case "", TransportLog:
		return NewLogMailer(slog.Default()), nil
	case TransportSMTP:
		return NewSMTPMailer(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
		})
	case TransportAMQP:
		if publisher == nil {
			return nil, fmt.Errorf("mail transport %q needs an AMQP publisher", cfg.MailTransport)
		}
		return NewQueueMailer(publisher), nil
	default:
		return nil, fmt.Errorf("unknown mail transport %q", cfg.MailTransport)
	}
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	m.logger.InfoContext(ctx, "Email not sent (log transport)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body))
	return nil
}

// QueueMailer hands messages to the mail worker through the broker.
type QueueMailer struct {
	publisher Publisher
}

func NewQueueMailer(publisher Publisher) *QueueMailer {
	return &QueueMailer{publisher: publisher}
}

func (m *QueueMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	if err := m.publisher.PublishMail(ctx, msg); err != nil {
		return fmt.Errorf("failed to queue email: %w", err)
	}
	return nil
}
