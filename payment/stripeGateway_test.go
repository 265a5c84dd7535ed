package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func signedPayload(t *testing.T, body string) (payload []byte, header string) {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(body),
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})
	return signed.Payload, signed.Header
}

func TestParseWebhookSucceeded(t *testing.T) {
	g := NewStripeGateway("sk_test_unused", testWebhookSecret)
	body := `{
		"id": "evt_1",
		"object": "event",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_123", "object": "payment_intent", "metadata": {"orderId": "65f1c0ffee0000000000abcd"}}}
	}`
	payload, header := signedPayload(t, body)

	event, err := g.ParseWebhook(payload, header)
	require.NoError(t, err)
	assert.Equal(t, EventPaymentSucceeded, event.Type)
	assert.Equal(t, "pi_123", event.IntentID)
	assert.Equal(t, "65f1c0ffee0000000000abcd", event.OrderID)
}

func TestParseWebhookIgnoresOtherTypes(t *testing.T) {
	g := NewStripeGateway("sk_test_unused", testWebhookSecret)
	payload, header := signedPayload(t, `{"id":"evt_2","object":"event","type":"charge.refunded","data":{"object":{}}}`)

	event, err := g.ParseWebhook(payload, header)
	require.NoError(t, err)
	assert.Equal(t, "charge.refunded", event.Type)
	assert.Empty(t, event.OrderID)
}

func TestParseWebhookRejectsBadSignature(t *testing.T) {
	g := NewStripeGateway("sk_test_unused", testWebhookSecret)
	payload, _ := signedPayload(t, `{"id":"evt_3","object":"event","type":"payment_intent.succeeded","data":{"object":{}}}`)

	_, err := g.ParseWebhook(payload, "t=1,v1=deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = g.ParseWebhook(payload, "")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestDisabledGateway(t *testing.T) {
	var g DisabledGateway
	_, err := g.CreateIntent(context.Background(), IntentRequest{})
	assert.ErrorIs(t, err, ErrCardPaymentsDisabled)
	_, err = g.ParseWebhook([]byte("{}"), "sig")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}
