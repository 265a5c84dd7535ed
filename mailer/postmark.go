package mailer

import (
	"context"
	"fmt"

	"github.com/keighl/postmark"
)

type postmarkSender struct {
	client *postmark.Client
	from   string
}

func newPostmarkSender(apiToken, from string) *postmarkSender {
	return &postmarkSender{client: postmark.NewClient(apiToken, ""), from: from}
}

func (s *postmarkSender) send(_ context.Context, toEmail, subject, htmlContent, textContent string) error {
	resp, err := s.client.SendEmail(postmark.Email{
		From:     s.from,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: textContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.ErrorCode != 0 {
		return fmt.Errorf("failed to send email: postmark error %d: %s", resp.ErrorCode, resp.Message)
	}
	return nil
}
