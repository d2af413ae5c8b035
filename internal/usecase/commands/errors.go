package commands

import (
	"booking-checkout/internal/domain/booking"
	"booking-checkout/internal/pkg/errs"
)

var (
	ErrValidation             = errs.New("validation failed")
	ErrCheckoutCreationFailed = errs.New("checkout session creation failed")
	ErrAuthenticationRequired = errs.New("authentication required")
	ErrPersistenceFailed      = errs.New("persistence failed")
	ErrInvalidEventObject     = errs.New("event object could not be decoded")

	// Fatal for the event; surfaced as 5xx so the provider keeps retrying
	// while someone reconciles the session by hand.
	ErrMissingMetadata = booking.ErrMissingMetadata
	ErrInvalidMetadata = booking.ErrInvalidMetadata
)
