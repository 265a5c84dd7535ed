package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"strings"

	"shawon-burger/models"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks shawon-burger/mailer Mailer

type Mailer interface {
	SendVerificationEmail(ctx context.Context, toEmail, code, name string) error
	SendOrderConfirmationEmail(ctx context.Context, toEmail string, order *models.Order) error
}

// sender delivers one rendered message; providers only implement this.
type sender interface {
	send(ctx context.Context, toEmail, subject, htmlContent, textContent string) error
}

// EmailService renders the shop's messages and hands them to a provider.
type EmailService struct {
	provider sender
}

var (
	verificationHTML = template.Must(template.New("verification").Parse(
		`<p>Hi {{.Name}},</p><p>Your verification code is <strong>{{.Code}}</strong>. It expires in 15 minutes.</p>`))

	orderHTML = template.Must(template.New("order").Parse(
		`<p>Thank you for your order <strong>{{.OrderNumber}}</strong>.</p><ul>` +
			`{{range .Items}}<li>{{.Quantity}} x {{.Name}} (Tk {{printf "%.2f" .Price}})</li>{{end}}</ul>` +
			`<p>Subtotal: Tk {{printf "%.2f" .TotalAmount}}<br>Delivery: Tk {{printf "%.2f" .DeliveryFee}}<br>` +
			`<strong>Total: Tk {{printf "%.2f" .GrandTotal}}</strong></p>` +
			`<p>Payment method: {{.PaymentMethod}}<br>Deliver to: {{.DeliveryAddress}}</p>`))
)

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func (es *EmailService) SendVerificationEmail(ctx context.Context, toEmail, code, name string) error {
	subject := "Your Shawon Burger verification code"
	html, err := render(verificationHTML, struct{ Name, Code string }{displayName(name), code})
	if err != nil {
		return err
	}
	text := fmt.Sprintf("Hi %s, your verification code is %s. It expires in 15 minutes.", displayName(name), code)
	return es.provider.send(ctx, toEmail, subject, html, text)
}

func (es *EmailService) SendOrderConfirmationEmail(ctx context.Context, toEmail string, order *models.Order) error {
	subject := fmt.Sprintf("Order %s received", order.OrderNumber)
	html, err := render(orderHTML, order)
	if err != nil {
		return err
	}
	text := fmt.Sprintf("Thank you for your order %s. Total: Tk %.2f", order.OrderNumber, order.GrandTotal())
	return es.provider.send(ctx, toEmail, subject, html, text)
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "there"
	}
	return name
}

// New picks the provider named by MAIL_PROVIDER.
func New(provider, from, postmarkToken, sendgridKey string) (*EmailService, error) {
	switch provider {
	case "postmark":
		if postmarkToken == "" {
			return nil, fmt.Errorf("POSTMARK_API_TOKEN is not set")
		}
		return &EmailService{provider: newPostmarkSender(postmarkToken, from)}, nil
	case "sendgrid":
		if sendgridKey == "" {
			return nil, fmt.Errorf("SENDGRID_API_KEY is not set")
		}
		return &EmailService{provider: newSendgridSender(sendgridKey, from)}, nil
	case "log", "":
		return &EmailService{provider: logSender{}}, nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", provider)
	}
}

// logSender records that a message would have been sent; used in development.
// Bodies carry verification codes and are never logged.
type logSender struct{}

func (logSender) send(_ context.Context, toEmail, subject, _, textContent string) error {
	log.Printf("mail to=%s subject=%q body=%d bytes (not sent, MAIL_PROVIDER=log)", toEmail, subject, len(textContent))
	return nil
}
