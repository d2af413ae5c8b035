package bootstrap

import (
	"time"

	"booking-checkout/internal/pkg/config"
	"booking-checkout/internal/pkg/errs"
	"booking-checkout/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}

	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Audience, tokenDuration), nil
}
