// Package mail hands submission e-mails to the delivery pipeline.
package mail

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/linskybing/forms-go/internal/events"
)

// Message kinds.
const (
	KindNotification = "notification"
	KindConfirmation = "confirmation"
)

type Address struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type Message struct {
	Kind         string   `json:"kind"`
	FormID       uint     `json:"form_id"`
	SubmissionID uint     `json:"submission_id"`
	From         Address  `json:"from"`
	To           []string `json:"to"`
	ReplyTo      string   `json:"reply_to,omitempty"`
	Bcc          []string `json:"bcc,omitempty"`
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
}

type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// NoopMailer drops every message.
type NoopMailer struct{}

func (NoopMailer) Send(context.Context, Message) error { return nil }

// EventMailer queues messages as submission.notify events. The relay
// consuming the topic does the SMTP delivery.
type EventMailer struct {
	publisher events.Publisher
}

func NewEventMailer(p events.Publisher) *EventMailer {
	return &EventMailer{publisher: p}
}

func (m *EventMailer) Send(ctx context.Context, msg Message) error {
	return m.publisher.Publish(ctx, events.Event{
		Type:     events.TypeSubmissionNotify,
		FormID:   msg.FormID,
		EntityID: msg.SubmissionID,
		Data: map[string]any{
			"kind":     msg.Kind,
			"from":     msg.From,
			"to":       msg.To,
			"reply_to": msg.ReplyTo,
			"bcc":      msg.Bcc,
			"subject":  msg.Subject,
			"body":     msg.Body,
		},
	})
}

var validate = validator.New()

// Valid reports whether addr is a single bare e-mail address.
func Valid(addr string) bool {
	return addr != "" && validate.Var(addr, "email") == nil
}

// SplitAddresses splits a comma separated list, trims each entry and drops
// blanks and repeats. Entries are not validated.
func SplitAddresses(list string) []string {
	var out []string
	seen := map[string]bool{}
	for _, a := range strings.Split(list, ",") {
		a = strings.TrimSpace(a)
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}
