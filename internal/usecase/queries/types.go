package queries

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentView is the read model of a booked consultation.
type AppointmentView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Start           time.Time `json:"start"`
	DurationMinutes int32     `json:"duration_minutes"`
	ContactName     *string   `json:"contact_name,omitempty"`
	ContactEmail    *string   `json:"contact_email,omitempty"`
	ContactPhone    *string   `json:"contact_phone,omitempty"`
	Status          string    `json:"status"`
	Paid            bool      `json:"paid"`
	CreatedAt       time.Time `json:"created_at"`
}

// SubscriptionView is the read model of a coaching subscription.
type SubscriptionView struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"user_id"`
	PlanID               string    `json:"plan_id"`
	Status               string    `json:"status"`
	StripeSubscriptionID *string   `json:"stripe_subscription_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

type Page struct {
	Limit  int
	Offset int
}
