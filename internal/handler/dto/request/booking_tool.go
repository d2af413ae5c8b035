package request

import (
	"booking-checkout/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const (
	ToolScheduleAppointment = "schedule_appointment"
	ToolSubscribeCoaching   = "subscribe_coaching"
	ToolRequestPitchDeck    = "request_pitch_deck"
)

// BookingToolRequest is a flat tool invocation; which fields matter depends on Tool.
type BookingToolRequest struct {
	Tool     string `json:"tool" binding:"required"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
	Plan     string `json:"plan"`
	Project  string `json:"project"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func (r BookingToolRequest) ToScheduleAppointment(userID uuid.UUID) (commands.ScheduleAppointmentParams, error) {
	var p commands.ScheduleAppointmentParams
	if err := copier.Copy(&p, &r); err != nil {
		return p, err
	}
	p.UserID = userID
	return p, nil
}

func (r BookingToolRequest) ToSubscribeCoaching(userID uuid.UUID) (commands.SubscribeCoachingParams, error) {
	var p commands.SubscribeCoachingParams
	if err := copier.Copy(&p, &r); err != nil {
		return p, err
	}
	p.UserID = userID
	return p, nil
}

func (r BookingToolRequest) ToRequestPitchDeck(userID *uuid.UUID) (commands.RequestPitchDeckParams, error) {
	var p commands.RequestPitchDeckParams
	if err := copier.Copy(&p, &r); err != nil {
		return p, err
	}
	p.UserID = userID
	return p, nil
}
