package bootstrap

import (
	"booking-checkout/internal/handler/api"
	"booking-checkout/internal/infra/payment"
	"booking-checkout/internal/pkg/clock"
	"booking-checkout/internal/pkg/config"
	"booking-checkout/internal/pkg/stripesig"
	"booking-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		NewCheckoutGateway,
		fx.Annotate(
			NewWebhookVerifier,
			fx.As(new(api.EventVerifier)),
		),
	),
)

func NewCheckoutGateway(cfg config.Config) shared.CheckoutGateway {
	sc := payment.NewStripeClient(cfg.Stripe.SecretKey, cfg.Timeouts.Provider)
	return payment.NewStripeGateway(sc.CheckoutSessions, cfg.Stripe.Currency)
}

func NewWebhookVerifier(cfg config.Config, clk clock.Clock) *stripesig.Verifier {
	return stripesig.NewVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.WebhookTolerance, clk)
}
