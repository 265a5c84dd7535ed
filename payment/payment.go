package payment

import (
	"context"
	"errors"
)

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

type IntentRequest struct {
	AmountMinor    int64
	Currency       string
	OrderID        string
	IdempotencyKey string
}

type Intent struct {
	ID           string
	ClientSecret string
}

// Event is the subset of a gateway webhook the order engine acts on.
type Event struct {
	ID       string
	Type     string
	IntentID string
	OrderID  string
}

//go:generate mockgen -destination=../mocks/mock_gateway.go -package=mocks shawon-burger/payment Gateway

type Gateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
	CancelIntent(ctx context.Context, intentID string) error
	ParseWebhook(payload []byte, signature string) (*Event, error)
}

var ErrCardPaymentsDisabled = errors.New("card payments are not configured")

// DisabledGateway is used when no gateway credentials are configured.
type DisabledGateway struct{}

func (DisabledGateway) CreateIntent(context.Context, IntentRequest) (*Intent, error) {
	return nil, ErrCardPaymentsDisabled
}

func (DisabledGateway) CancelIntent(context.Context, string) error {
	return ErrCardPaymentsDisabled
}

func (DisabledGateway) ParseWebhook([]byte, string) (*Event, error) {
	return nil, ErrInvalidSignature
}
