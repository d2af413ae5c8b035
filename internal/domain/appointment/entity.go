package appointment

import (
	"time"

	"booking-checkout/internal/domain/contact"
	"booking-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration = errs.New("duration must be one of 45, 60, 75, 90, 105, 120 minutes")
	ErrInvalidDate     = errs.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime     = errs.New("time must be formatted as HH:MM")
	ErrMissingUser     = errs.New("appointment requires a user")
)

type Appointment struct {
	id              uuid.UUID
	userID          uuid.UUID
	duration        Duration
	slot            Slot
	contact         contact.Info
	status          Status
	stripePaymentID *string
	createdAt       time.Time
}

// New builds a confirmed appointment. stripePaymentID is nil when no payment was taken.
func New(userID uuid.UUID, duration Duration, slot Slot, info contact.Info, stripePaymentID *string, now time.Time) (*Appointment, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if _, err := NewDuration(duration.Minutes()); err != nil {
		return nil, err
	}
	return &Appointment{
		id:              uuid.New(),
		userID:          userID,
		duration:        duration,
		slot:            slot,
		contact:         info,
		status:          StatusConfirmed,
		stripePaymentID: stripePaymentID,
		createdAt:       now,
	}, nil
}

func (a *Appointment) ID() uuid.UUID            { return a.id }
func (a *Appointment) UserID() uuid.UUID        { return a.userID }
func (a *Appointment) Duration() Duration       { return a.duration }
func (a *Appointment) Slot() Slot               { return a.slot }
func (a *Appointment) Start() time.Time         { return a.slot.Start() }
func (a *Appointment) Contact() contact.Info    { return a.contact }
func (a *Appointment) Status() Status           { return a.status }
func (a *Appointment) StripePaymentID() *string { return a.stripePaymentID }
func (a *Appointment) CreatedAt() time.Time     { return a.createdAt }
