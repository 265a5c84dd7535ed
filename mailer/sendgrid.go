package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridSender struct {
	client *sendgrid.Client
	from   *mail.Email
}

func newSendgridSender(apiKey, from string) *sendgridSender {
	return &sendgridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("Shawon Burger", from),
	}
}

func (s *sendgridSender) send(ctx context.Context, toEmail, subject, htmlContent, textContent string) error {
	message := mail.NewSingleEmail(s.from, subject, mail.NewEmail("", toEmail), textContent, htmlContent)
	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("failed to send email: sendgrid status %d", resp.StatusCode)
	}
	return nil
}
