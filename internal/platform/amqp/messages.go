package amqp

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// MailEnvelope is the queued form of an outgoing email.
type MailEnvelope struct {
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMailEnvelope wraps a mail message for publishing.
func NewMailEnvelope(msg domain.MailMessage) *MailEnvelope {
	return &MailEnvelope{
		To:        msg.To,
		Subject:   msg.Subject,
		Body:      msg.Body,
		Timestamp: time.Now().UTC(),
	}
}

// Message converts the envelope back to a mail message.
func (e *MailEnvelope) Message() domain.MailMessage {
	return domain.MailMessage{To: e.To, Subject: e.Subject, Body: e.Body}
}

// ToJSON converts the envelope to JSON bytes
func (e *MailEnvelope) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// MailEnvelopeFromJSON decodes an envelope and rejects one without a recipient.
func MailEnvelopeFromJSON(data []byte) (*MailEnvelope, error) {
	var env MailEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if strings.TrimSpace(env.To) == "" {
		return nil, errors.New("mail envelope has no recipient")
	}
	return &env, nil
}
