// Package mailer delivers rendered email through Resend.
package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Message is a fully rendered email
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
}

// ResendSender sends messages with the Resend API
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a sender for apiKey
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

// Send delivers msg and returns the provider message id
func (s *ResendSender) Send(ctx context.Context, msg *Message) (string, error) {
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	return sent.Id, nil
}
