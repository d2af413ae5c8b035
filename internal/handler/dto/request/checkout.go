package request

import (
	"strings"

	"booking-checkout/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// CheckoutRequest is the body posted by the booking form.
type CheckoutRequest struct {
	FormData  BookingForm `json:"formData" binding:"required"`
	UserID    string      `json:"userId"`
	UserEmail string      `json:"userEmail"`
}

type BookingForm struct {
	ServiceType  string            `json:"serviceType" binding:"required"`
	Consultation *ConsultationForm `json:"consultation,omitempty"`
	Coaching     *CoachingForm     `json:"coaching,omitempty"`
	ContactInfo  ContactForm       `json:"contactInfo"`
}

type ConsultationForm struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration"`
}

type CoachingForm struct {
	Plan string `json:"plan"`
}

type ContactForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ClaimedUserID parses the optional userId field. ok is false when it is absent.
func (r CheckoutRequest) ClaimedUserID() (id uuid.UUID, ok bool, err error) {
	raw := strings.TrimSpace(r.UserID)
	if raw == "" {
		return uuid.Nil, false, nil
	}
	id, err = uuid.Parse(raw)
	return id, true, err
}

func (f BookingForm) ToDomain(userID uuid.UUID, fallbackEmail string) (booking.Request, error) {
	req := booking.Request{
		ServiceType: booking.ServiceType(strings.TrimSpace(f.ServiceType)),
		UserID:      userID,
	}
	if err := copier.Copy(&req.Contact, &f.ContactInfo); err != nil {
		return booking.Request{}, err
	}
	if req.Contact.Email == "" {
		req.Contact.Email = fallbackEmail
	}

	if f.Consultation != nil {
		req.Consultation = &booking.ConsultationDetails{}
		if err := copier.Copy(req.Consultation, f.Consultation); err != nil {
			return booking.Request{}, err
		}
	}
	if f.Coaching != nil {
		req.Coaching = &booking.CoachingDetails{}
		if err := copier.Copy(req.Coaching, f.Coaching); err != nil {
			return booking.Request{}, err
		}
	}
	return req, nil
}
