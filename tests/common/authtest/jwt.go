//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"booking-checkout/internal/pkg/config"
	"booking-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, h.cfg.Audience, duration)
	token, err := service.GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Audience, -time.Minute)
	token, err := service.GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}
