package readstore

import (
	"context"

	"booking-checkout/internal/infra"
	sqlc "booking-checkout/internal/infra/sqlc/generated"
	"booking-checkout/internal/pkg/pgconv"
	"booking-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	ListAppointmentsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsByUserParams) ([]sqlc.Appointments, error)
	ListSubscriptionsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSubscriptionsByUserParams) ([]sqlc.Subscriptions, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindAppointmentsByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentsByUser(ctx, r.db, sqlc.ListAppointmentsByUserParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}

	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		result[i] = toAppointmentView(row)
	}
	return result, nil
}

func (r *BookingReadStore) FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*queries.SubscriptionView, error) {
	rows, err := r.queries.ListSubscriptionsByUser(ctx, r.db, sqlc.ListSubscriptionsByUserParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscriptions", err)
	}

	result := make([]*queries.SubscriptionView, len(rows))
	for i, row := range rows {
		result[i] = toSubscriptionView(row)
	}
	return result, nil
}

func toAppointmentView(row sqlc.Appointments) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:              row.ID,
		UserID:          row.UserID,
		Start:           pgconv.TimeFromPgtype(row.AppointmentStart),
		DurationMinutes: row.DurationMinutes,
		ContactName:     pgconv.StringPtrFromPgtype(row.ContactName),
		ContactEmail:    pgconv.StringPtrFromPgtype(row.ContactEmail),
		ContactPhone:    pgconv.StringPtrFromPgtype(row.ContactPhone),
		Status:          row.Status,
		Paid:            row.StripePaymentID.Valid,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toSubscriptionView(row sqlc.Subscriptions) *queries.SubscriptionView {
	return &queries.SubscriptionView{
		ID:                   row.ID,
		UserID:               row.UserID,
		PlanID:               row.PlanID,
		Status:               row.Status,
		StripeSubscriptionID: pgconv.StringPtrFromPgtype(row.StripeSubscriptionID),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
