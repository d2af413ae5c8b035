package commands

import (
	"context"
	"log/slog"

	"booking-checkout/internal/domain/appointment"
	"booking-checkout/internal/domain/contact"
	"booking-checkout/internal/domain/pitch"
	"booking-checkout/internal/domain/subscription"
	"booking-checkout/internal/pkg/clock"
	"booking-checkout/internal/pkg/errs"
	"booking-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleAppointmentParams struct {
	UserID   uuid.UUID
	Date     string
	Time     string
	Duration int
	Name     string
	Email    string
	Phone    string
}

type SubscribeCoachingParams struct {
	UserID uuid.UUID
	Plan   string
	Email  string
}

// RequestPitchDeckParams may come from an anonymous visitor, so UserID is optional.
type RequestPitchDeckParams struct {
	UserID  *uuid.UUID
	Project string
	Name    string
	Email   string
	Phone   string
	Role    string
}

// BookingToolCommands records bookings made through the assistant tool without a payment.
type BookingToolCommands interface {
	ScheduleAppointment(ctx context.Context, p ScheduleAppointmentParams) (uuid.UUID, error)
	SubscribeCoaching(ctx context.Context, p SubscribeCoachingParams) (uuid.UUID, error)
	RequestPitchDeck(ctx context.Context, p RequestPitchDeckParams) (uuid.UUID, error)
}

type bookingToolUseCaseImpl struct {
	uow    shared.UnitOfWork
	outbox outbox
	clock  clock.Clock
}

func NewBookingToolCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock) BookingToolCommands {
	return &bookingToolUseCaseImpl{
		uow:    uow,
		outbox: outbox{publisher: publisher},
		clock:  clk,
	}
}

func (uc *bookingToolUseCaseImpl) ScheduleAppointment(ctx context.Context, p ScheduleAppointmentParams) (uuid.UUID, error) {
	if p.UserID == uuid.Nil {
		return uuid.Nil, ErrAuthenticationRequired
	}

	duration, err := appointment.NewDuration(p.Duration)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}
	slot, err := appointment.NewSlot(p.Date, p.Time)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}
	info, err := contact.NewPartialInfo(p.Name, p.Email, p.Phone)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	now := uc.clock.Now()
	appt, err := appointment.New(p.UserID, duration, slot, info, nil, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	var (
		id      uuid.UUID
		pending pendingEvent
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Appointments().Create(ctx, tx.DB(), appt)
		if txErr != nil {
			return txErr
		}
		pending, txErr = uc.outbox.enqueue(ctx, tx, topicAppointmentConfirmed, RoutingAppointmentConfirmed, AppointmentConfirmed{
			AppointmentID:   id,
			UserID:          p.UserID,
			Start:           appt.Start(),
			DurationMinutes: duration.Minutes(),
			ContactName:     info.Name(),
			ContactEmail:    info.Email(),
		}, now)
		return txErr
	})
	if err != nil {
		return uuid.Nil, errs.Mark(errs.Wrap(err, "failed to schedule appointment"), ErrPersistenceFailed)
	}

	slog.Info("appointment scheduled via booking tool",
		"appointment_id", id.String(),
		"user_id", p.UserID.String())
	uc.outbox.publish(ctx, pending)
	return id, nil
}

func (uc *bookingToolUseCaseImpl) SubscribeCoaching(ctx context.Context, p SubscribeCoachingParams) (uuid.UUID, error) {
	if p.UserID == uuid.Nil {
		return uuid.Nil, ErrAuthenticationRequired
	}

	plan, err := subscription.NewPlan(p.Plan)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	now := uc.clock.Now()
	sub, err := subscription.New(p.UserID, plan, subscription.StripeRefs{}, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	var (
		id      uuid.UUID
		pending pendingEvent
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Subscriptions().Create(ctx, tx.DB(), sub)
		if txErr != nil {
			return txErr
		}
		pending, txErr = uc.outbox.enqueue(ctx, tx, topicSubscriptionActivated, RoutingSubscriptionActivated, SubscriptionActivated{
			SubscriptionID: id,
			UserID:         p.UserID,
			Plan:           plan.String(),
			ContactEmail:   p.Email,
		}, now)
		return txErr
	})
	if err != nil {
		return uuid.Nil, errs.Mark(errs.Wrap(err, "failed to subscribe to coaching"), ErrPersistenceFailed)
	}

	slog.Info("coaching subscription created via booking tool",
		"subscription_id", id.String(),
		"user_id", p.UserID.String(),
		"plan", plan.String())
	uc.outbox.publish(ctx, pending)
	return id, nil
}

func (uc *bookingToolUseCaseImpl) RequestPitchDeck(ctx context.Context, p RequestPitchDeckParams) (uuid.UUID, error) {
	project, err := pitch.NewProject(p.Project)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}
	info, err := contact.NewPartialInfo(p.Name, p.Email, p.Phone)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	now := uc.clock.Now()
	req := pitch.NewRequest(project, p.UserID, info, p.Role, now)

	var (
		id      uuid.UUID
		pending pendingEvent
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.PitchRequests().Create(ctx, tx.DB(), req)
		if txErr != nil {
			return txErr
		}
		pending, txErr = uc.outbox.enqueue(ctx, tx, topicPitchRequestSubmitted, RoutingPitchRequestSubmitted, PitchRequestSubmitted{
			PitchRequestID: id,
			UserID:         p.UserID,
			Project:        project.String(),
			ContactEmail:   info.Email(),
		}, now)
		return txErr
	})
	if err != nil {
		return uuid.Nil, errs.Mark(errs.Wrap(err, "failed to record pitch deck request"), ErrPersistenceFailed)
	}

	slog.Info("pitch deck requested via booking tool",
		"pitch_request_id", id.String(),
		"project", project.String())
	uc.outbox.publish(ctx, pending)
	return id, nil
}
