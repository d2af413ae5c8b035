package bootstrap

import (
	"context"

	"booking-checkout/internal/pkg/config"
	"booking-checkout/internal/pkg/obs"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(StartTracing),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := obs.InitTracer(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
