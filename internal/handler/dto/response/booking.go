package response

import (
	"time"

	"booking-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingToolResponse sets exactly one of the id fields.
type BookingToolResponse struct {
	Success        bool       `json:"success"`
	Message        string     `json:"message"`
	AppointmentID  *uuid.UUID `json:"appointmentId,omitempty"`
	SubscriptionID *uuid.UUID `json:"subscriptionId,omitempty"`
	PitchRequestID *uuid.UUID `json:"pitchRequestId,omitempty"`
}

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	Start           time.Time `json:"start"`
	DurationMinutes int32     `json:"durationMinutes"`
	ContactName     *string   `json:"contactName,omitempty"`
	ContactEmail    *string   `json:"contactEmail,omitempty"`
	ContactPhone    *string   `json:"contactPhone,omitempty"`
	Status          string    `json:"status"`
	Paid            bool      `json:"paid"`
	CreatedAt       time.Time `json:"createdAt"`
}

type SubscriptionResponse struct {
	ID        uuid.UUID `json:"id"`
	PlanID    string    `json:"planId"`
	Status    string    `json:"status"`
	Recurring bool      `json:"recurring"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              v.ID,
		Start:           v.Start,
		DurationMinutes: v.DurationMinutes,
		ContactName:     v.ContactName,
		ContactEmail:    v.ContactEmail,
		ContactPhone:    v.ContactPhone,
		Status:          v.Status,
		Paid:            v.Paid,
		CreatedAt:       v.CreatedAt,
	}
}

func FromSubscriptionView(v *queries.SubscriptionView) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:        v.ID,
		PlanID:    v.PlanID,
		Status:    v.Status,
		Recurring: v.StripeSubscriptionID != nil,
		CreatedAt: v.CreatedAt,
	}
}
