package payment

import (
	"context"
	"errors"
	"maps"
	"net/http"
	"time"

	"booking-checkout/internal/pkg/errs"
	"booking-checkout/internal/usecase/shared"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

const recurringIntervalMonth = "month"

// SessionCreator is the slice of the Stripe client used here.
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeGateway struct {
	sessions SessionCreator
	currency string
}

// NewStripeClient builds a client instance; the package-level stripe.Key is never set.
func NewStripeClient(secretKey string, timeout time.Duration) *client.API {
	httpClient := &http.Client{Timeout: timeout}
	return client.New(secretKey, stripe.NewBackends(httpClient))
}

func NewStripeGateway(sessions SessionCreator, currency string) *StripeGateway {
	return &StripeGateway{
		sessions: sessions,
		currency: currency,
	}
}

func (g *StripeGateway) CreateSession(ctx context.Context, in shared.SessionInput) (*shared.SessionResult, error) {
	params := BuildSessionParams(in, g.currency)
	params.Context = ctx

	sess, err := g.sessions.New(params)
	if err != nil {
		return nil, toProviderError(err)
	}
	if sess.URL == "" {
		return nil, &shared.ProviderError{Message: "checkout session has no redirect url"}
	}

	return &shared.SessionResult{ID: sess.ID, URL: sess.URL}, nil
}

// BuildSessionParams maps a priced booking onto a single-line-item session.
func BuildSessionParams(in shared.SessionInput, defaultCurrency string) *stripe.CheckoutSessionParams {
	currency := in.Quote.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
		Currency:   stripe.String(currency),
		UnitAmount: stripe.Int64(in.Quote.AmountCents),
		ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(in.Quote.ProductName),
		},
	}
	if in.Quote.Description != "" {
		priceData.ProductData.Description = stripe.String(in.Quote.Description)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(in.Mode)),
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{PriceData: priceData, Quantity: stripe.Int64(1)},
		},
	}
	if in.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(in.CustomerEmail)
	}
	if in.ClientReferenceID != "" {
		params.ClientReferenceID = stripe.String(in.ClientReferenceID)
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	switch in.Mode {
	case shared.SessionModeSubscription:
		interval := in.Quote.Interval
		if interval == "" {
			interval = recurringIntervalMonth
		}
		priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval: stripe.String(interval),
		}
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: maps.Clone(in.Metadata),
		}
	case shared.SessionModePayment:
		params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: maps.Clone(in.Metadata),
		}
	}

	return params
}

func toProviderError(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		msg := se.Msg
		if msg == "" {
			msg = "payment provider rejected the request"
		}
		return &shared.ProviderError{
			Message:    msg,
			Code:       string(se.Code),
			StatusCode: se.HTTPStatusCode,
		}
	}
	return errs.Wrap(err, "payment provider request failed")
}
