package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingQueries interface {
	ListAppointments(ctx context.Context, userID uuid.UUID, page Page) ([]*AppointmentView, error)
	ListSubscriptions(ctx context.Context, userID uuid.UUID, page Page) ([]*SubscriptionView, error)
}

type BookingReadStore interface {
	FindAppointmentsByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*AppointmentView, error)
	FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*SubscriptionView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
	}
}

func (q *bookingQueriesImpl) ListAppointments(ctx context.Context, userID uuid.UUID, page Page) ([]*AppointmentView, error) {
	limit, offset := normalize(page)
	return q.readStore.FindAppointmentsByUser(ctx, userID, limit, offset)
}

func (q *bookingQueriesImpl) ListSubscriptions(ctx context.Context, userID uuid.UUID, page Page) ([]*SubscriptionView, error) {
	limit, offset := normalize(page)
	return q.readStore.FindSubscriptionsByUser(ctx, userID, limit, offset)
}

func normalize(page Page) (int32, int32) {
	// #nosec G115 -- both values are clamped
	return int32(ValidateLimit(page.Limit)), int32(ValidateOffset(page.Offset))
}
