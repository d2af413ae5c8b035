//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
)

// CheckoutEventBuilder produces webhook bodies shaped like the provider's.
type CheckoutEventBuilder struct {
	EventID         string
	EventType       string
	Created         time.Time
	SessionID       string
	Mode            string
	PaymentStatus   string
	PaymentIntentID string
	CustomerID      string
	SubscriptionID  string
	Metadata        map[string]string
}

func NewCheckoutCompletedEventBuilder(metadata map[string]string) *CheckoutEventBuilder {
	suffix := uuid.NewString()[:8]
	return &CheckoutEventBuilder{
		EventID:         "evt_test_" + suffix,
		EventType:       string(stripe.EventTypeCheckoutSessionCompleted),
		Created:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		SessionID:       "cs_test_" + suffix,
		Mode:            "payment",
		PaymentStatus:   "paid",
		PaymentIntentID: "pi_test_" + suffix,
		CustomerID:      "cus_test_" + suffix,
		Metadata:        metadata,
	}
}

func (b *CheckoutEventBuilder) WithEventID(id string) *CheckoutEventBuilder {
	b.EventID = id
	return b
}

func (b *CheckoutEventBuilder) WithEventType(t string) *CheckoutEventBuilder {
	b.EventType = t
	return b
}

func (b *CheckoutEventBuilder) WithSessionID(id string) *CheckoutEventBuilder {
	b.SessionID = id
	return b
}

// AsSubscription switches to subscription mode; the session then carries a subscription id
// and no payment intent.
func (b *CheckoutEventBuilder) AsSubscription(subscriptionID string) *CheckoutEventBuilder {
	b.Mode = "subscription"
	b.SubscriptionID = subscriptionID
	b.PaymentIntentID = ""
	return b
}

func (b *CheckoutEventBuilder) WithPaymentStatus(status string) *CheckoutEventBuilder {
	b.PaymentStatus = status
	return b
}

func (b *CheckoutEventBuilder) WithPaymentIntent(id string) *CheckoutEventBuilder {
	b.PaymentIntentID = id
	return b
}

func (b *CheckoutEventBuilder) BuildPayload() []byte {
	session := map[string]any{
		"id":             b.SessionID,
		"object":         "checkout.session",
		"mode":           b.Mode,
		"status":         "complete",
		"payment_status": b.PaymentStatus,
		"metadata":       b.Metadata,
	}
	if b.PaymentIntentID != "" {
		session["payment_intent"] = b.PaymentIntentID
	}
	if b.CustomerID != "" {
		session["customer"] = b.CustomerID
	}
	if b.SubscriptionID != "" {
		session["subscription"] = b.SubscriptionID
	}

	event := map[string]any{
		"id":          b.EventID,
		"object":      "event",
		"api_version": stripe.APIVersion,
		"type":        b.EventType,
		"created":     b.Created.Unix(),
		"livemode":    false,
		"data":        map[string]any{"object": session},
	}

	payload, err := json.Marshal(event)
	if err != nil {
		panic("builder: " + err.Error())
	}
	return payload
}

func (b *CheckoutEventBuilder) BuildEvent() *stripe.Event {
	var event stripe.Event
	if err := json.Unmarshal(b.BuildPayload(), &event); err != nil {
		panic("builder: " + err.Error())
	}
	return &event
}
