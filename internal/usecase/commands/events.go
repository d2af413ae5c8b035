package commands

import (
	"time"

	"github.com/google/uuid"
)

// Routing keys on the booking events exchange.
const (
	RoutingAppointmentConfirmed  = "booking.appointment.confirmed"
	RoutingSubscriptionActivated = "booking.subscription.activated"
	RoutingPitchRequestSubmitted = "booking.pitch_request.submitted"

	notificationKindEmail      = "email"
	topicAppointmentConfirmed  = "appointment_confirmed"
	topicSubscriptionActivated = "subscription_activated"
	topicPitchRequestSubmitted = "pitch_request_submitted"
)

type AppointmentConfirmed struct {
	AppointmentID   uuid.UUID `json:"appointment_id"`
	UserID          uuid.UUID `json:"user_id"`
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"duration_minutes"`
	ContactName     string    `json:"contact_name,omitempty"`
	ContactEmail    string    `json:"contact_email,omitempty"`
	Paid            bool      `json:"paid"`
	SourceEventID   string    `json:"source_event_id,omitempty"`
}

type SubscriptionActivated struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	UserID         uuid.UUID `json:"user_id"`
	Plan           string    `json:"plan"`
	ContactEmail   string    `json:"contact_email,omitempty"`
	Paid           bool      `json:"paid"`
	SourceEventID  string    `json:"source_event_id,omitempty"`
}

type PitchRequestSubmitted struct {
	PitchRequestID uuid.UUID  `json:"pitch_request_id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	Project        string     `json:"project"`
	ContactEmail   string     `json:"contact_email,omitempty"`
}

// pendingEvent is queued inside a transaction and published once it commits.
type pendingEvent struct {
	routingKey string
	payload    any
}
