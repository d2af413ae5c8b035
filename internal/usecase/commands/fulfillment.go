package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"booking-checkout/internal/domain/appointment"
	"booking-checkout/internal/domain/booking"
	"booking-checkout/internal/domain/subscription"
	"booking-checkout/internal/infra"
	"booking-checkout/internal/pkg/clock"
	"booking-checkout/internal/pkg/errs"
	"booking-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Outcome string

const (
	OutcomeFulfilled Outcome = "fulfilled"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeIgnored   Outcome = "ignored"
)

type FulfillmentResult struct {
	EventID     string
	EventType   string
	Outcome     Outcome
	ServiceType booking.ServiceType
	ResultID    *uuid.UUID
}

type FulfillmentCommands interface {
	HandleEvent(ctx context.Context, event *stripe.Event) (*FulfillmentResult, error)
}

type FulfillmentSettings struct {
	Timeout time.Duration
}

var errAlreadyFulfilled = errs.New("checkout session already fulfilled")

type fulfillmentUseCaseImpl struct {
	uow      shared.UnitOfWork
	outbox   outbox
	clock    clock.Clock
	settings FulfillmentSettings
}

func NewFulfillmentCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, settings FulfillmentSettings) FulfillmentCommands {
	return &fulfillmentUseCaseImpl{
		uow:      uow,
		outbox:   outbox{publisher: publisher},
		clock:    clk,
		settings: settings,
	}
}

// HandleEvent acts on a verified provider event. Each event id takes effect at most once.
func (uc *fulfillmentUseCaseImpl) HandleEvent(ctx context.Context, event *stripe.Event) (*FulfillmentResult, error) {
	ctx, span := tracer.Start(ctx, "FulfillmentCommands.HandleEvent",
		trace.WithAttributes(
			attribute.String("stripe.event_id", event.ID),
			attribute.String("stripe.event_type", string(event.Type)),
		))
	defer span.End()

	if uc.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.settings.Timeout)
		defer cancel()
	}

	result := &FulfillmentResult{
		EventID:   event.ID,
		EventType: string(event.Type),
		Outcome:   OutcomeIgnored,
	}

	var err error
	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted, stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		err = uc.handleCheckoutCompleted(ctx, event, result)
	case stripe.EventTypeCheckoutSessionAsyncPaymentFailed:
		slog.Warn("asynchronous checkout payment failed", "event_id", event.ID)
	case stripe.EventTypeInvoicePaymentSucceeded:
		// renewals are tracked by the provider; the subscription row stays active
		slog.Info("invoice payment succeeded", "event_id", event.ID)
	default:
		slog.Debug("ignoring webhook event", "event_id", event.ID, "event_type", string(event.Type))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fulfillment failed")
		return nil, err
	}

	span.SetAttributes(attribute.String("fulfillment.outcome", string(result.Outcome)))
	return result, nil
}

func (uc *fulfillmentUseCaseImpl) handleCheckoutCompleted(ctx context.Context, event *stripe.Event, result *FulfillmentResult) error {
	session, err := decodeCheckoutSession(event)
	if err != nil {
		slog.Error("checkout session object could not be decoded",
			"event_id", event.ID,
			"error", err.Error())
		return err
	}

	if !isSettled(session) {
		// completed but still awaiting an asynchronous payment; async_payment_succeeded follows
		slog.Info("checkout session payment not settled yet",
			"event_id", event.ID,
			"session_id", session.ID,
			"payment_status", string(session.PaymentStatus))
		return nil
	}

	order, err := booking.DecodeMetadata(session.Metadata)
	switch {
	case errs.Is(err, booking.ErrUnrecognizedService):
		slog.Warn("checkout session has unrecognized service type",
			"event_id", event.ID,
			"session_id", session.ID,
			"service_type", session.Metadata[booking.MetaServiceType])
		return nil
	case err != nil:
		slog.Error("checkout session cannot be fulfilled, manual reconciliation required",
			"event_id", event.ID,
			"session_id", session.ID,
			"error", err.Error())
		return err
	}
	result.ServiceType = order.ServiceType

	var pending []pendingEvent
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending = nil

		inserted, txErr := tx.WebhookEvents().TryInsert(ctx, tx.DB(), event.ID, string(event.Type))
		if txErr != nil {
			return txErr
		}
		if !inserted {
			result.Outcome = OutcomeDuplicate
			return nil
		}

		id, ev, txErr := uc.fulfill(ctx, tx, event.ID, order, session)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return errAlreadyFulfilled
			}
			return txErr
		}

		if txErr = tx.WebhookEvents().Complete(ctx, tx.DB(), event.ID, string(OutcomeFulfilled), &id); txErr != nil {
			return txErr
		}
		result.Outcome = OutcomeFulfilled
		result.ResultID = &id
		pending = append(pending, ev)
		return nil
	})

	switch {
	case errs.Is(err, errAlreadyFulfilled):
		// same session delivered under a different event id
		slog.Info("checkout session already fulfilled",
			"event_id", event.ID,
			"session_id", session.ID)
		result.Outcome = OutcomeDuplicate
		return nil
	case err != nil:
		return errs.Mark(err, ErrPersistenceFailed)
	}

	if result.Outcome == OutcomeDuplicate {
		slog.Info("duplicate webhook delivery ignored", "event_id", event.ID)
		return nil
	}

	slog.Info("checkout session fulfilled",
		"event_id", event.ID,
		"session_id", session.ID,
		"service_type", order.ServiceType.String(),
		"result_id", result.ResultID.String())

	uc.outbox.publish(ctx, pending...)
	return nil
}

func (uc *fulfillmentUseCaseImpl) fulfill(ctx context.Context, tx shared.Tx, eventID string, order *booking.Order, session *stripe.CheckoutSession) (uuid.UUID, pendingEvent, error) {
	now := uc.clock.Now()

	switch order.ServiceType {
	case booking.ServiceConsultation:
		appt, err := appointment.New(order.UserID, order.Duration, order.Slot, order.Contact, paymentIntentID(session), now)
		if err != nil {
			return uuid.Nil, pendingEvent{}, errs.Mark(err, ErrInvalidMetadata)
		}
		id, err := tx.Appointments().Create(ctx, tx.DB(), appt)
		if err != nil {
			return uuid.Nil, pendingEvent{}, err
		}
		ev, err := uc.outbox.enqueue(ctx, tx, topicAppointmentConfirmed, RoutingAppointmentConfirmed, AppointmentConfirmed{
			AppointmentID:   id,
			UserID:          appt.UserID(),
			Start:           appt.Start(),
			DurationMinutes: appt.Duration().Minutes(),
			ContactName:     appt.Contact().Name(),
			ContactEmail:    appt.Contact().Email(),
			Paid:            true,
			SourceEventID:   eventID,
		}, now)
		return id, ev, err

	case booking.ServiceCoaching:
		sub, err := subscription.New(order.UserID, order.Plan, subscription.StripeRefs{
			CustomerID:     customerID(session),
			PaymentID:      paymentIntentID(session),
			SubscriptionID: subscriptionID(session),
		}, now)
		if err != nil {
			return uuid.Nil, pendingEvent{}, errs.Mark(err, ErrInvalidMetadata)
		}
		id, err := tx.Subscriptions().Create(ctx, tx.DB(), sub)
		if err != nil {
			return uuid.Nil, pendingEvent{}, err
		}
		ev, err := uc.outbox.enqueue(ctx, tx, topicSubscriptionActivated, RoutingSubscriptionActivated, SubscriptionActivated{
			SubscriptionID: id,
			UserID:         sub.UserID(),
			Plan:           sub.Plan().String(),
			ContactEmail:   order.Contact.Email(),
			Paid:           true,
			SourceEventID:  eventID,
		}, now)
		return id, ev, err
	}

	return uuid.Nil, pendingEvent{}, booking.ErrUnrecognizedService
}

func decodeCheckoutSession(event *stripe.Event) (*stripe.CheckoutSession, error) {
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, ErrInvalidEventObject
	}
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, errs.Mark(err, ErrInvalidEventObject)
	}
	return &session, nil
}

func isSettled(s *stripe.CheckoutSession) bool {
	switch s.PaymentStatus {
	case stripe.CheckoutSessionPaymentStatusPaid, stripe.CheckoutSessionPaymentStatusNoPaymentRequired:
		return true
	default:
		return false
	}
}

func paymentIntentID(s *stripe.CheckoutSession) *string {
	if s.PaymentIntent == nil || s.PaymentIntent.ID == "" {
		return nil
	}
	id := s.PaymentIntent.ID
	return &id
}

func subscriptionID(s *stripe.CheckoutSession) *string {
	if s.Subscription == nil || s.Subscription.ID == "" {
		return nil
	}
	id := s.Subscription.ID
	return &id
}

func customerID(s *stripe.CheckoutSession) *string {
	if s.Customer == nil || s.Customer.ID == "" {
		return nil
	}
	id := s.Customer.ID
	return &id
}
