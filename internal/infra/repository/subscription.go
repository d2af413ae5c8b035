package repository

import (
	"context"

	"booking-checkout/internal/domain/subscription"
	"booking-checkout/internal/infra"
	"booking-checkout/internal/infra/repository/converter"
	sqlc "booking-checkout/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type SubscriptionWriteQueries interface {
	CreateSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSubscriptionParams) (uuid.UUID, error)
}

type SubscriptionRepository struct {
	queries SubscriptionWriteQueries
	db      sqlc.DBTX
}

func NewSubscriptionRepository(queries SubscriptionWriteQueries, db sqlc.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{
		queries: queries,
		db:      db,
	}
}

// Create fails with KindDuplicateKey when the provider subscription id is already stored.
func (r *SubscriptionRepository) Create(ctx context.Context, tx sqlc.DBTX, s *subscription.Subscription) (uuid.UUID, error) {
	id, err := r.queries.CreateSubscription(ctx, tx, converter.SubscriptionToCreateParams(s))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create subscription", err)
	}
	return id, nil
}
