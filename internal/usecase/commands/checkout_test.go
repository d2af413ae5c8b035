//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"booking-checkout/internal/domain/booking"
	"booking-checkout/internal/domain/pricing"
	"booking-checkout/internal/pkg/errs"
	"booking-checkout/internal/usecase/commands"
	"booking-checkout/internal/usecase/shared"
	"booking-checkout/tests/common/builder"
	sharedmock "booking-checkout/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var checkoutSettings = commands.CheckoutSettings{
	SiteURL: "https://coach.example.com/",
	Timeout: 5 * time.Second,
}

func newCheckoutCommands(t *testing.T) (commands.CheckoutCommands, *sharedmock.MockCheckoutGateway) {
	ctrl := gomock.NewController(t)
	gateway := sharedmock.NewMockCheckoutGateway(ctrl)
	return commands.NewCheckoutCommands(gateway, pricing.NewDefaultCalculator("eur"), checkoutSettings), gateway
}

func TestCheckoutCommands_CreateCheckoutSession(t *testing.T) {
	ctx := context.Background()

	t.Run("success: consultation opens a one-off payment session", func(t *testing.T) {
		cmds, gateway := newCheckoutCommands(t)
		b := builder.NewConsultationBuilder().WithDuration(90)

		var captured shared.SessionInput
		gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, in shared.SessionInput) (*shared.SessionResult, error) {
				captured = in
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline, "provider call must be bounded")
				return &shared.SessionResult{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil
			})

		result, err := cmds.CreateCheckoutSession(ctx, b.BuildDomain())
		require.NoError(t, err)

		assert.Equal(t, "cs_test_1", result.SessionID)
		assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", result.URL)
		assert.Equal(t, shared.SessionModePayment, result.Mode)
		assert.Equal(t, int64(13500), result.AmountCents)

		assert.Equal(t, shared.SessionModePayment, captured.Mode)
		assert.Equal(t, int64(13500), captured.Quote.AmountCents)
		assert.False(t, captured.Quote.Recurring)
		assert.Equal(t, b.BuildMetadata(), captured.Metadata)
		assert.Equal(t, "ada@example.com", captured.CustomerEmail)
		assert.Equal(t, b.UserID.String(), captured.ClientReferenceID)
		assert.Equal(t, "https://coach.example.com/booking/success?session_id={CHECKOUT_SESSION_ID}", captured.SuccessURL)
		assert.Equal(t, "https://coach.example.com/booking/cancel", captured.CancelURL)
	})

	t.Run("success: coaching standard opens a monthly subscription at 9000 cents", func(t *testing.T) {
		cmds, gateway := newCheckoutCommands(t)
		b := builder.NewCoachingBuilder().WithPlan("standard")

		gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in shared.SessionInput) (*shared.SessionResult, error) {
				assert.Equal(t, shared.SessionModeSubscription, in.Mode)
				assert.Equal(t, int64(9000), in.Quote.AmountCents)
				assert.True(t, in.Quote.Recurring)
				assert.Equal(t, "month", in.Quote.Interval)
				assert.Equal(t, "standard", in.Metadata[booking.MetaPlan])
				return &shared.SessionResult{ID: "cs_test_2", URL: "https://checkout.stripe.com/c/pay/cs_test_2"}, nil
			})

		result, err := cmds.CreateCheckoutSession(ctx, b.BuildDomain())
		require.NoError(t, err)
		assert.Equal(t, shared.SessionModeSubscription, result.Mode)
		assert.Equal(t, int64(9000), result.AmountCents)
	})

	t.Run("success: padded contact fields are trimmed before reaching the provider", func(t *testing.T) {
		cmds, gateway := newCheckoutCommands(t)
		req := builder.NewCoachingBuilder().WithPlan("standard").
			WithContact("  A  ", " a@b.com ", " +33 1 ").BuildDomain()

		var captured shared.SessionInput
		gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in shared.SessionInput) (*shared.SessionResult, error) {
				captured = in
				return &shared.SessionResult{ID: "cs_test_3", URL: "https://checkout.stripe.com/c/pay/cs_test_3"}, nil
			})

		_, err := cmds.CreateCheckoutSession(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, "a@b.com", captured.CustomerEmail)
		assert.Equal(t, "A", captured.Metadata[booking.MetaName])
		assert.Equal(t, "a@b.com", captured.Metadata[booking.MetaEmail])
		assert.Equal(t, "+33 1", captured.Metadata[booking.MetaPhone])

		order, err := booking.DecodeMetadata(captured.Metadata)
		require.NoError(t, err)
		assert.Equal(t, captured.Metadata[booking.MetaName], order.Contact.Name())
		assert.Equal(t, captured.Metadata[booking.MetaEmail], order.Contact.Email())
		assert.Equal(t, captured.Metadata[booking.MetaPhone], order.Contact.Phone())
	})

	t.Run("error: invalid requests never reach the provider", func(t *testing.T) {
		testCases := []struct {
			name string
			req  booking.Request
		}{
			{name: "unknown plan", req: builder.NewCoachingBuilder().WithPlan("gold").BuildDomain()},
			{name: "duration not allowed", req: builder.NewConsultationBuilder().WithDuration(50).BuildDomain()},
			{name: "invalid email", req: builder.NewConsultationBuilder().WithContact("Ada", "ada@", "").BuildDomain()},
			{name: "unknown service", req: builder.NewCoachingBuilder().WithServiceType("massage").BuildDomain()},
			{name: "pitch deck is not chargeable", req: builder.NewCoachingBuilder().WithServiceType("pitch_deck").BuildDomain()},
			{name: "phone too long", req: builder.NewCoachingBuilder().WithContact("A", "a@b.com", strings.Repeat("1", 600)).BuildDomain()},
			{name: "name too long", req: builder.NewCoachingBuilder().WithContact(strings.Repeat("A", 201), "a@b.com", "").BuildDomain()},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				cmds, gateway := newCheckoutCommands(t)
				gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Times(0)

				result, err := cmds.CreateCheckoutSession(ctx, tc.req)
				require.Error(t, err)
				assert.Nil(t, result)
				assert.True(t, errs.Is(err, commands.ErrValidation), "got %v", err)
			})
		}
	})

	t.Run("error: provider failure keeps the provider message", func(t *testing.T) {
		cmds, gateway := newCheckoutCommands(t)
		providerErr := &shared.ProviderError{Message: "Invalid API Key provided: sk_test_***", StatusCode: 401}
		gateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil, providerErr)

		result, err := cmds.CreateCheckoutSession(ctx, builder.NewConsultationBuilder().BuildDomain())
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errs.Is(err, commands.ErrCheckoutCreationFailed))

		var pe *shared.ProviderError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "Invalid API Key provided: sk_test_***", pe.Message)
	})
}
