package components

import (
	"booking-checkout/internal/domain/pricing"
	"booking-checkout/internal/pkg/clock"
	"booking-checkout/internal/pkg/config"
	"booking-checkout/internal/usecase"
	"booking-checkout/internal/usecase/commands"
	"booking-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) pricing.Calculator {
		return pricing.NewDefaultCalculator(cfg.Stripe.Currency)
	},
	func(cfg config.Config) commands.CheckoutSettings {
		return commands.CheckoutSettings{
			SiteURL: cfg.Site.URL,
			Timeout: cfg.Timeouts.Provider,
		}
	},
	func(cfg config.Config) commands.FulfillmentSettings {
		return commands.FulfillmentSettings{
			Timeout: cfg.Timeouts.Fulfillment,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutCommands,
		commands.NewFulfillmentCommands,
		commands.NewBookingToolCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
