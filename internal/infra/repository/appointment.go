package repository

import (
	"context"

	"booking-checkout/internal/domain/appointment"
	"booking-checkout/internal/infra"
	"booking-checkout/internal/infra/repository/converter"
	sqlc "booking-checkout/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (uuid.UUID, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	id, err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToCreateParams(a))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}
