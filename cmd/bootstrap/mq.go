package bootstrap

import (
	"context"
	"log/slog"

	"booking-checkout/internal/infra/mq"
	"booking-checkout/internal/pkg/config"
	"booking-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to a no-op publisher when the broker is absent or
// unreachable; notification jobs are already durable in the database.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if cfg.MQ.URL == "" {
		slog.Info("event publishing disabled: MQ_URL not set")
		return mq.NoopPublisher{}
	}

	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		slog.Warn("event publishing disabled: broker unavailable", "error", err.Error())
		return mq.NoopPublisher{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
