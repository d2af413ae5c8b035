package repository

import (
	"context"

	"booking-checkout/internal/domain/pitch"
	"booking-checkout/internal/infra"
	"booking-checkout/internal/infra/repository/converter"
	sqlc "booking-checkout/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PitchRequestWriteQueries interface {
	CreatePitchRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePitchRequestParams) (uuid.UUID, error)
}

type PitchRequestRepository struct {
	queries PitchRequestWriteQueries
	db      sqlc.DBTX
}

func NewPitchRequestRepository(queries PitchRequestWriteQueries, db sqlc.DBTX) *PitchRequestRepository {
	return &PitchRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PitchRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *pitch.Request) (uuid.UUID, error) {
	id, err := r.queries.CreatePitchRequest(ctx, tx, converter.PitchRequestToCreateParams(req))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create pitch request", err)
	}
	return id, nil
}
