package booking

import (
	"booking-checkout/internal/domain/appointment"
	"booking-checkout/internal/domain/contact"
	"booking-checkout/internal/domain/subscription"
	"booking-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownServiceType   = errs.New("unknown service type")
	ErrMissingConsultation  = errs.New("consultation details are required")
	ErrMissingCoaching      = errs.New("coaching details are required")
	ErrConflictingDetails   = errs.New("service details do not match service type")
	ErrServiceNotChargeable = errs.New("service type does not require payment")
)

type ServiceType string

const (
	ServiceConsultation ServiceType = "consultation"
	ServiceCoaching     ServiceType = "coaching"
	ServicePitchDeck    ServiceType = "pitch_deck"
)

func (s ServiceType) String() string { return string(s) }

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceConsultation, ServiceCoaching, ServicePitchDeck:
		return true
	default:
		return false
	}
}

type ConsultationDetails struct {
	Date            string
	Time            string
	DurationMinutes int
}

type CoachingDetails struct {
	Plan string
}

type ContactDetails struct {
	Name  string
	Email string
	Phone string
}

// Request is the booking form submitted by the site. Exactly one of
// Consultation or Coaching is set and it matches ServiceType; pitch_deck sets neither.
type Request struct {
	ServiceType  ServiceType
	Consultation *ConsultationDetails
	Coaching     *CoachingDetails
	Contact      ContactDetails
	UserID       uuid.UUID
}

func (r Request) Validate() error {
	_, err := r.Normalize()
	return err
}

// Normalize validates r and returns a copy carrying the trimmed contact fields.
// Callers encode the returned request, never the raw one.
func (r Request) Normalize() (Request, error) {
	if !r.ServiceType.IsValid() {
		return Request{}, ErrUnknownServiceType
	}
	info, err := contact.NewInfo(r.Contact.Name, r.Contact.Email, r.Contact.Phone)
	if err != nil {
		return Request{}, err
	}

	switch r.ServiceType {
	case ServiceConsultation:
		if r.Consultation == nil {
			return Request{}, ErrMissingConsultation
		}
		if r.Coaching != nil {
			return Request{}, ErrConflictingDetails
		}
		if _, err := appointment.NewDuration(r.Consultation.DurationMinutes); err != nil {
			return Request{}, err
		}
		if _, err := appointment.NewSlot(r.Consultation.Date, r.Consultation.Time); err != nil {
			return Request{}, err
		}
	case ServiceCoaching:
		if r.Coaching == nil {
			return Request{}, ErrMissingCoaching
		}
		if r.Consultation != nil {
			return Request{}, ErrConflictingDetails
		}
		if _, err := subscription.NewPlan(r.Coaching.Plan); err != nil {
			return Request{}, err
		}
	case ServicePitchDeck:
		if r.Consultation != nil || r.Coaching != nil {
			return Request{}, ErrConflictingDetails
		}
	}

	r.Contact = ContactDetails{Name: info.Name(), Email: info.Email(), Phone: info.Phone()}
	return r, nil
}

// IsChargeable reports whether the service goes through checkout.
func (r Request) IsChargeable() bool {
	return r.ServiceType == ServiceConsultation || r.ServiceType == ServiceCoaching
}
