package converter

import (
	"booking-checkout/internal/domain/appointment"
	"booking-checkout/internal/domain/pitch"
	"booking-checkout/internal/domain/subscription"
	sqlc "booking-checkout/internal/infra/sqlc/generated"
	"booking-checkout/internal/pkg/pgconv"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	info := a.Contact()
	return sqlc.CreateAppointmentParams{
		UserID: a.UserID(),
		// #nosec G115 -- durations are restricted to a small allowed set
		DurationMinutes:  int32(a.Duration().Minutes()),
		ContactName:      pgconv.OptionalString(info.Name()),
		ContactEmail:     pgconv.OptionalString(info.Email()),
		ContactPhone:     pgconv.OptionalString(info.Phone()),
		Status:           a.Status().String(),
		StripePaymentID:  pgconv.StringPtrToPgtype(a.StripePaymentID()),
		AppointmentStart: pgconv.TimeToPgtype(a.Start()),
	}
}

func SubscriptionToCreateParams(s *subscription.Subscription) sqlc.CreateSubscriptionParams {
	refs := s.StripeRefs()
	return sqlc.CreateSubscriptionParams{
		UserID:               s.UserID(),
		PlanID:               s.Plan().String(),
		Status:               s.Status().String(),
		StripeCustomerID:     pgconv.StringPtrToPgtype(refs.CustomerID),
		StripePaymentID:      pgconv.StringPtrToPgtype(refs.PaymentID),
		StripeSubscriptionID: pgconv.StringPtrToPgtype(refs.SubscriptionID),
	}
}

func PitchRequestToCreateParams(r *pitch.Request) sqlc.CreatePitchRequestParams {
	info := r.Contact()
	return sqlc.CreatePitchRequestParams{
		Project: r.Project().String(),
		UserID:  pgconv.UUIDPtrToPgtype(r.UserID()),
		Name:    pgconv.OptionalString(info.Name()),
		Email:   pgconv.OptionalString(info.Email()),
		Phone:   pgconv.OptionalString(info.Phone()),
		Role:    pgconv.OptionalString(r.Role()),
		Status:  r.Status(),
	}
}
