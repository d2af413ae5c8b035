package booking

import (
	"strconv"
	"strings"

	"booking-checkout/internal/domain/appointment"
	"booking-checkout/internal/domain/contact"
	"booking-checkout/internal/domain/subscription"
	"booking-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

// Metadata keys attached to a checkout session and read back on completion.
const (
	MetaUserID      = "userId"
	MetaServiceType = "serviceType"
	MetaDate        = "date"
	MetaTime        = "time"
	MetaDuration    = "duration"
	MetaPlan        = "plan"
	MetaName        = "name"
	MetaEmail       = "email"
	MetaPhone       = "phone"
)

var (
	ErrMissingMetadata     = errs.New("checkout metadata is missing userId")
	ErrInvalidMetadata     = errs.New("checkout metadata is malformed")
	ErrUnrecognizedService = errs.New("checkout metadata has an unrecognized serviceType")
)

// EncodeMetadata flattens a chargeable request. The request must already be valid.
func EncodeMetadata(r Request) (map[string]string, error) {
	if !r.IsChargeable() {
		return nil, ErrServiceNotChargeable
	}

	md := map[string]string{
		MetaUserID:      r.UserID.String(),
		MetaServiceType: r.ServiceType.String(),
		MetaName:        r.Contact.Name,
		MetaEmail:       r.Contact.Email,
		MetaPhone:       r.Contact.Phone,
	}

	switch r.ServiceType {
	case ServiceConsultation:
		if r.Consultation == nil {
			return nil, ErrMissingConsultation
		}
		md[MetaDate] = r.Consultation.Date
		md[MetaTime] = r.Consultation.Time
		md[MetaDuration] = strconv.Itoa(r.Consultation.DurationMinutes)
	case ServiceCoaching:
		if r.Coaching == nil {
			return nil, ErrMissingCoaching
		}
		md[MetaPlan] = r.Coaching.Plan
	}
	return md, nil
}

// Order is a decoded, validated checkout metadata set.
type Order struct {
	UserID      uuid.UUID
	ServiceType ServiceType
	Contact     contact.Info

	// consultation only
	Duration appointment.Duration
	Slot     appointment.Slot

	// coaching only
	Plan subscription.Plan
}

// DecodeMetadata is the inverse of EncodeMetadata.
func DecodeMetadata(md map[string]string) (*Order, error) {
	rawUserID := strings.TrimSpace(md[MetaUserID])
	if rawUserID == "" {
		return nil, ErrMissingMetadata
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "userId %q", rawUserID), ErrInvalidMetadata)
	}

	info, err := contact.NewPartialInfo(md[MetaName], md[MetaEmail], md[MetaPhone])
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidMetadata)
	}

	order := &Order{
		UserID:      userID,
		ServiceType: ServiceType(md[MetaServiceType]),
		Contact:     info,
	}

	switch order.ServiceType {
	case ServiceConsultation:
		minutes, err := strconv.Atoi(md[MetaDuration])
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "duration %q", md[MetaDuration]), ErrInvalidMetadata)
		}
		duration, err := appointment.NewDuration(minutes)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidMetadata)
		}
		slot, err := appointment.NewSlot(md[MetaDate], md[MetaTime])
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidMetadata)
		}
		order.Duration = duration
		order.Slot = slot
	case ServiceCoaching:
		plan, err := subscription.NewPlan(md[MetaPlan])
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidMetadata)
		}
		order.Plan = plan
	default:
		return order, ErrUnrecognizedService
	}
	return order, nil
}
