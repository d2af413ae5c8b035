//go:build unit || e2e

package builder

import (
	"booking-checkout/internal/domain/booking"
	reqdto "booking-checkout/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID      uuid.UUID
	ServiceType string
	Date        string
	Time        string
	Duration    int
	Plan        string
	Name        string
	Email       string
	Phone       string
}

func NewConsultationBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:      uuid.New(),
		ServiceType: booking.ServiceConsultation.String(),
		Date:        "2025-07-01",
		Time:        "10:00",
		Duration:    60,
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Phone:       "+33 6 12 34 56 78",
	}
}

func NewCoachingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:      uuid.New(),
		ServiceType: booking.ServiceCoaching.String(),
		Plan:        "standard",
		Name:        "Grace Hopper",
		Email:       "grace@example.com",
	}
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithServiceType(s string) *BookingBuilder {
	b.ServiceType = s
	return b
}

func (b *BookingBuilder) WithSlot(date, clock string) *BookingBuilder {
	b.Date = date
	b.Time = clock
	return b
}

func (b *BookingBuilder) WithDuration(minutes int) *BookingBuilder {
	b.Duration = minutes
	return b
}

func (b *BookingBuilder) WithPlan(plan string) *BookingBuilder {
	b.Plan = plan
	return b
}

func (b *BookingBuilder) WithContact(name, email, phone string) *BookingBuilder {
	b.Name = name
	b.Email = email
	b.Phone = phone
	return b
}

func (b *BookingBuilder) isConsultation() bool {
	return b.ServiceType == booking.ServiceConsultation.String()
}

func (b *BookingBuilder) isCoaching() bool {
	return b.ServiceType == booking.ServiceCoaching.String()
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.CheckoutRequest {
	form := reqdto.BookingForm{
		ServiceType: b.ServiceType,
		ContactInfo: reqdto.ContactForm{Name: b.Name, Email: b.Email, Phone: b.Phone},
	}
	if b.isConsultation() {
		form.Consultation = &reqdto.ConsultationForm{Date: b.Date, Time: b.Time, DurationMinutes: b.Duration}
	}
	if b.isCoaching() {
		form.Coaching = &reqdto.CoachingForm{Plan: b.Plan}
	}
	return reqdto.CheckoutRequest{
		FormData: form,
		UserID:   b.UserID.String(),
	}
}

func (b *BookingBuilder) BuildDomain() booking.Request {
	req := booking.Request{
		ServiceType: booking.ServiceType(b.ServiceType),
		UserID:      b.UserID,
		Contact:     booking.ContactDetails{Name: b.Name, Email: b.Email, Phone: b.Phone},
	}
	if b.isConsultation() {
		req.Consultation = &booking.ConsultationDetails{Date: b.Date, Time: b.Time, DurationMinutes: b.Duration}
	}
	if b.isCoaching() {
		req.Coaching = &booking.CoachingDetails{Plan: b.Plan}
	}
	return req
}

// BuildMetadata returns the checkout metadata the checkout command would attach.
func (b *BookingBuilder) BuildMetadata() map[string]string {
	md, err := booking.EncodeMetadata(b.BuildDomain())
	if err != nil {
		panic("builder: " + err.Error())
	}
	return md
}

func (b *BookingBuilder) BuildToolRequest(tool string) reqdto.BookingToolRequest {
	return reqdto.BookingToolRequest{
		Tool:     tool,
		Date:     b.Date,
		Time:     b.Time,
		Duration: b.Duration,
		Plan:     b.Plan,
		Name:     b.Name,
		Email:    b.Email,
		Phone:    b.Phone,
	}
}
