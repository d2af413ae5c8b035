package repository

import (
	"context"

	"booking-checkout/internal/infra"
	sqlc "booking-checkout/internal/infra/sqlc/generated"
	"booking-checkout/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type WebhookEventWriteQueries interface {
	TryInsertWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertWebhookEventParams) (int64, error)
	CompleteWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteWebhookEventParams) (int64, error)
}

type WebhookEventRepository struct {
	queries WebhookEventWriteQueries
	db      sqlc.DBTX
}

func NewWebhookEventRepository(queries WebhookEventWriteQueries, db sqlc.DBTX) *WebhookEventRepository {
	return &WebhookEventRepository{
		queries: queries,
		db:      db,
	}
}

// TryInsert claims eventID. It reports false without error when the event was claimed before.
func (r *WebhookEventRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, eventID, eventType string) (bool, error) {
	params := sqlc.TryInsertWebhookEventParams{
		EventID:   eventID,
		EventType: eventType,
	}

	affected, err := r.queries.TryInsertWebhookEvent(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert webhook event", err)
	}

	return affected == 1, nil
}

func (r *WebhookEventRepository) Complete(ctx context.Context, tx sqlc.DBTX, eventID, outcome string, resultID *uuid.UUID) error {
	params := sqlc.CompleteWebhookEventParams{
		EventID:  eventID,
		Outcome:  outcome,
		ResultID: pgconv.UUIDPtrToPgtype(resultID),
	}

	affected, err := r.queries.CompleteWebhookEvent(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to complete webhook event", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("webhook event not found", nil, infra.KindNotFound)
	}

	return nil
}
