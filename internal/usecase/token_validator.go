package usecase

import (
	"booking-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Principal is the authenticated caller extracted from a bearer token.
type Principal struct {
	UserID uuid.UUID
	Email  string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Principal{}, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return Principal{}, err
	}

	return Principal{UserID: userID, Email: claims.Email}, nil
}
