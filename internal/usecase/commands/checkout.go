package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"booking-checkout/internal/domain/appointment"
	"booking-checkout/internal/domain/booking"
	"booking-checkout/internal/domain/pricing"
	"booking-checkout/internal/domain/subscription"
	"booking-checkout/internal/pkg/errs"
	"booking-checkout/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("booking-checkout/usecase/commands")

// Stripe substitutes the real session id into this placeholder on redirect.
const sessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

type CheckoutResult struct {
	SessionID   string
	URL         string
	Mode        shared.SessionMode
	AmountCents int64
}

type CheckoutCommands interface {
	CreateCheckoutSession(ctx context.Context, req booking.Request) (*CheckoutResult, error)
}

type CheckoutSettings struct {
	SiteURL string
	Timeout time.Duration
}

func (s CheckoutSettings) successURL() string {
	return strings.TrimRight(s.SiteURL, "/") + "/booking/success?session_id=" + sessionIDPlaceholder
}

func (s CheckoutSettings) cancelURL() string {
	return strings.TrimRight(s.SiteURL, "/") + "/booking/cancel"
}

type checkoutUseCaseImpl struct {
	gateway  shared.CheckoutGateway
	calc     pricing.Calculator
	settings CheckoutSettings
}

func NewCheckoutCommands(gateway shared.CheckoutGateway, calc pricing.Calculator, settings CheckoutSettings) CheckoutCommands {
	return &checkoutUseCaseImpl{
		gateway:  gateway,
		calc:     calc,
		settings: settings,
	}
}

// CreateCheckoutSession prices the request and opens a hosted checkout session.
// Nothing is persisted locally; fulfillment happens on the completion webhook.
func (uc *checkoutUseCaseImpl) CreateCheckoutSession(ctx context.Context, req booking.Request) (*CheckoutResult, error) {
	ctx, span := tracer.Start(ctx, "CheckoutCommands.CreateCheckoutSession",
		trace.WithAttributes(attribute.String("booking.service_type", req.ServiceType.String())))
	defer span.End()

	req, err := req.Normalize()
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if !req.IsChargeable() {
		return nil, errs.Mark(booking.ErrServiceNotChargeable, ErrValidation)
	}

	input, err := uc.buildSessionInput(req)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	span.SetAttributes(attribute.Int64("checkout.amount_cents", input.Quote.AmountCents))

	if uc.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.settings.Timeout)
		defer cancel()
	}

	session, err := uc.gateway.CreateSession(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider rejected checkout session")
		slog.Error("failed to create checkout session",
			"user_id", req.UserID.String(),
			"service_type", req.ServiceType.String(),
			"error", err.Error())
		return nil, errs.Mark(err, ErrCheckoutCreationFailed)
	}

	slog.Info("checkout session created",
		"session_id", session.ID,
		"user_id", req.UserID.String(),
		"mode", string(input.Mode),
		"amount_cents", input.Quote.AmountCents)

	return &CheckoutResult{
		SessionID:   session.ID,
		URL:         session.URL,
		Mode:        input.Mode,
		AmountCents: input.Quote.AmountCents,
	}, nil
}

func (uc *checkoutUseCaseImpl) buildSessionInput(req booking.Request) (shared.SessionInput, error) {
	metadata, err := booking.EncodeMetadata(req)
	if err != nil {
		return shared.SessionInput{}, err
	}

	input := shared.SessionInput{
		Metadata:          metadata,
		CustomerEmail:     req.Contact.Email,
		ClientReferenceID: req.UserID.String(),
		SuccessURL:        uc.settings.successURL(),
		CancelURL:         uc.settings.cancelURL(),
	}

	switch req.ServiceType {
	case booking.ServiceConsultation:
		duration, err := appointment.NewDuration(req.Consultation.DurationMinutes)
		if err != nil {
			return shared.SessionInput{}, err
		}
		input.Mode = shared.SessionModePayment
		input.Quote = uc.calc.Consultation(duration)
	case booking.ServiceCoaching:
		plan, err := subscription.NewPlan(req.Coaching.Plan)
		if err != nil {
			return shared.SessionInput{}, err
		}
		quote, err := uc.calc.Coaching(plan)
		if err != nil {
			return shared.SessionInput{}, err
		}
		input.Mode = shared.SessionModeSubscription
		input.Quote = quote
	default:
		return shared.SessionInput{}, booking.ErrServiceNotChargeable
	}

	return input, nil
}
