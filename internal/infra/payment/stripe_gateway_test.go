//go:build unit

package payment_test

import (
	"context"
	"errors"
	"testing"

	"booking-checkout/internal/domain/pricing"
	"booking-checkout/internal/infra/payment"
	"booking-checkout/internal/usecase/shared"
	paymentmock "booking-checkout/tests/mock/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"
)

func consultationInput() shared.SessionInput {
	return shared.SessionInput{
		Mode: shared.SessionModePayment,
		Quote: pricing.Quote{
			AmountCents: 13500,
			ProductName: "Consultation (90 min)",
			Description: "2025-07-01 10:00",
		},
		Metadata:          map[string]string{"userId": "u-1", "serviceType": "consultation"},
		CustomerEmail:     "ada@example.com",
		ClientReferenceID: "u-1",
		SuccessURL:        "http://localhost:3000/booking/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:         "http://localhost:3000/booking/cancel",
	}
}

func TestBuildSessionParams(t *testing.T) {
	t.Run("payment mode attaches metadata to the payment intent", func(t *testing.T) {
		in := consultationInput()
		params := payment.BuildSessionParams(in, "eur")

		assert.Equal(t, "payment", *params.Mode)
		require.Len(t, params.LineItems, 1)
		item := params.LineItems[0]
		assert.Equal(t, int64(1), *item.Quantity)
		assert.Equal(t, int64(13500), *item.PriceData.UnitAmount)
		assert.Equal(t, "eur", *item.PriceData.Currency)
		assert.Equal(t, "Consultation (90 min)", *item.PriceData.ProductData.Name)
		assert.Equal(t, "2025-07-01 10:00", *item.PriceData.ProductData.Description)
		assert.Nil(t, item.PriceData.Recurring)

		assert.Equal(t, in.Metadata, params.Metadata)
		require.NotNil(t, params.PaymentIntentData)
		assert.Equal(t, in.Metadata, params.PaymentIntentData.Metadata)
		assert.Nil(t, params.SubscriptionData)

		assert.Equal(t, "ada@example.com", *params.CustomerEmail)
		assert.Equal(t, "u-1", *params.ClientReferenceID)
		assert.Equal(t, in.SuccessURL, *params.SuccessURL)
		assert.Equal(t, in.CancelURL, *params.CancelURL)
	})

	t.Run("subscription mode adds a monthly recurring price", func(t *testing.T) {
		in := consultationInput()
		in.Mode = shared.SessionModeSubscription
		in.Quote = pricing.Quote{AmountCents: 9000, Currency: "usd", ProductName: "Coaching standard", Recurring: true}
		in.CustomerEmail = ""

		params := payment.BuildSessionParams(in, "eur")

		assert.Equal(t, "subscription", *params.Mode)
		item := params.LineItems[0]
		assert.Equal(t, "usd", *item.PriceData.Currency)
		require.NotNil(t, item.PriceData.Recurring)
		assert.Equal(t, "month", *item.PriceData.Recurring.Interval)
		assert.Nil(t, item.PriceData.ProductData.Description)

		require.NotNil(t, params.SubscriptionData)
		assert.Equal(t, in.Metadata, params.SubscriptionData.Metadata)
		assert.Nil(t, params.PaymentIntentData)
		assert.Nil(t, params.CustomerEmail)
	})

	t.Run("metadata maps are copies", func(t *testing.T) {
		in := consultationInput()
		params := payment.BuildSessionParams(in, "eur")
		in.Metadata["userId"] = "changed"
		assert.Equal(t, "u-1", params.PaymentIntentData.Metadata["userId"])
	})
}

func TestStripeGateway_CreateSession(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		session     *stripe.CheckoutSession
		newErr      error
		wantURL     string
		wantMessage string
		providerErr bool
	}{
		{
			name:    "success: redirect url returned",
			session: &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"},
			wantURL: "https://checkout.stripe.com/c/pay/cs_test_1",
		},
		{
			name:        "error: provider rejects request",
			newErr:      &stripe.Error{Msg: "Amount must be at least 50 cents", Code: stripe.ErrorCodeAmountTooSmall, HTTPStatusCode: 400},
			wantMessage: "Amount must be at least 50 cents",
			providerErr: true,
		},
		{
			name:        "error: provider error without message",
			newErr:      &stripe.Error{HTTPStatusCode: 500},
			wantMessage: "payment provider rejected the request",
			providerErr: true,
		},
		{
			name:        "error: session without url",
			session:     &stripe.CheckoutSession{ID: "cs_test_2"},
			wantMessage: "checkout session has no redirect url",
			providerErr: true,
		},
		{
			name:        "error: transport failure",
			newErr:      errors.New("dial tcp: i/o timeout"),
			wantMessage: "payment provider request failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sessions := paymentmock.NewMockSessionCreator(ctrl)
			gw := payment.NewStripeGateway(sessions, "eur")

			sessions.EXPECT().New(gomock.Any()).
				DoAndReturn(func(p *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
					assert.Equal(t, ctx, p.Context)
					return tc.session, tc.newErr
				})

			res, err := gw.CreateSession(ctx, consultationInput())

			if tc.wantMessage != "" {
				require.Error(t, err)
				assert.Nil(t, res)
				assert.Contains(t, err.Error(), tc.wantMessage)
				var pe *shared.ProviderError
				assert.Equal(t, tc.providerErr, errors.As(err, &pe))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.session.ID, res.ID)
			assert.Equal(t, tc.wantURL, res.URL)
		})
	}
}
