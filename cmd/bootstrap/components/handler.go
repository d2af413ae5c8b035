package components

import (
	"booking-checkout/internal/handler"
	"booking-checkout/internal/handler/api"
	"booking-checkout/internal/handler/middleware"
	"booking-checkout/internal/pkg/config"
	"booking-checkout/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewBookingToolHandler,
		api.NewBookingHandler,
		func(cfg config.Config, verifier api.EventVerifier, fulfillment commands.FulfillmentCommands) *api.WebhookHandler {
			return api.NewWebhookHandler(verifier, fulfillment, cfg.Stripe.MaxBodyBytes)
		},
		func(c *api.CheckoutHandler, w *api.WebhookHandler, bt *api.BookingToolHandler, b *api.BookingHandler) handler.Handlers {
			return handler.Handlers{Checkout: c, Webhook: w, BookingTool: bt, Booking: b}
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
