package shared

import (
	"context"

	"booking-checkout/internal/domain/pricing"
)

type SessionMode string

const (
	SessionModePayment      SessionMode = "payment"
	SessionModeSubscription SessionMode = "subscription"
)

type SessionInput struct {
	Mode              SessionMode
	Quote             pricing.Quote
	Metadata          map[string]string
	CustomerEmail     string
	ClientReferenceID string
	SuccessURL        string
	CancelURL         string
}

type SessionResult struct {
	ID  string
	URL string
}

// CheckoutGateway creates hosted checkout sessions at the payment provider.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, in SessionInput) (*SessionResult, error)
}

// ProviderError carries the provider's own message so it can be shown verbatim.
type ProviderError struct {
	Message    string
	Code       string
	StatusCode int
}

func (e *ProviderError) Error() string {
	return e.Message
}

// EventPublisher emits domain events after a transaction commits. Delivery is best effort.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}
