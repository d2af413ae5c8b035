package bootstrap

import (
	"booking-checkout/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	DBModule,
	JWTModule,
	StripeModule,
	MQModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
