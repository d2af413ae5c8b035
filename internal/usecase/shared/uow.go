package shared

import (
	"context"
	"time"

	"booking-checkout/internal/domain/appointment"
	"booking-checkout/internal/domain/pitch"
	"booking-checkout/internal/domain/subscription"
	sqlc "booking-checkout/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	Subscriptions() SubscriptionRepository
	PitchRequests() PitchRequestRepository
	WebhookEvents() WebhookEventRepository
	Notifications() NotificationRepository
	DB() sqlc.DBTX
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error)
}

type SubscriptionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *subscription.Subscription) (uuid.UUID, error)
}

type PitchRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *pitch.Request) (uuid.UUID, error)
}

// WebhookEventRepository is the ledger of provider events already acted on.
type WebhookEventRepository interface {
	// TryInsert reports false when eventID was recorded before.
	TryInsert(ctx context.Context, tx sqlc.DBTX, eventID, eventType string) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, eventID, outcome string, resultID *uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
