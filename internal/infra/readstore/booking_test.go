//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-checkout/internal/infra"
	"booking-checkout/internal/infra/readstore"
	sqlc "booking-checkout/internal/infra/sqlc/generated"
	readstoremock "booking-checkout/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// FindAppointmentsByUser Tests
// =============================================================================

func TestReadStore_FindAppointmentsByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBookingReadQueries)
		expectedLen   int
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rows mapped to views",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				rows := []sqlc.Appointments{
					{
						ID:               uuid.New(),
						UserID:           userID,
						DurationMinutes:  90,
						ContactName:      pgtype.Text{String: "Ada", Valid: true},
						Status:           "confirmed",
						StripePaymentID:  pgtype.Text{String: "pi_1", Valid: true},
						AppointmentStart: pgtype.Timestamptz{Time: start, Valid: true},
						CreatedAt:        pgtype.Timestamptz{Time: start.Add(-24 * time.Hour), Valid: true},
					},
					{
						ID:               uuid.New(),
						UserID:           userID,
						DurationMinutes:  60,
						Status:           "confirmed",
						AppointmentStart: pgtype.Timestamptz{Time: start.Add(48 * time.Hour), Valid: true},
					},
				}
				params := sqlc.ListAppointmentsByUserParams{UserID: userID, Limit: 20, Offset: 0}
				mock.EXPECT().ListAppointmentsByUser(ctx, gomock.Any(), params).Return(rows, nil)
			},
			expectedLen: 2,
		},
		{
			name: "success: no appointments",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().ListAppointmentsByUser(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.Appointments{}, nil)
			},
			expectedLen: 0,
		},
		{
			name: "error: database connection lost",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().ListAppointmentsByUser(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: connection class pg error",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().ListAppointmentsByUser(ctx, gomock.Any(), gomock.Any()).Return(nil, &pgconn.PgError{Code: "08001"})
			},
			expectedError: true,
			expectKind:    infra.KindConnection,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
			tc.setupMock(mockQueries)
			store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

			views, err := store.FindAppointmentsByUser(ctx, userID, 20, 0)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, views)
				return
			}
			require.NoError(t, err)
			require.Len(t, views, tc.expectedLen)
			if tc.expectedLen == 2 {
				assert.True(t, views[0].Paid)
				assert.Equal(t, int32(90), views[0].DurationMinutes)
				assert.True(t, start.Equal(views[0].Start))
				require.NotNil(t, views[0].ContactName)
				assert.Equal(t, "Ada", *views[0].ContactName)
				assert.Nil(t, views[0].ContactEmail)

				assert.False(t, views[1].Paid, "appointment without payment id is not paid")
			}
		})
	}
}

// =============================================================================
// FindSubscriptionsByUser Tests
// =============================================================================

func TestReadStore_FindSubscriptionsByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: subscription mapped with provider id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		params := sqlc.ListSubscriptionsByUserParams{UserID: userID, Limit: 5, Offset: 10}
		mockQueries.EXPECT().ListSubscriptionsByUser(ctx, gomock.Any(), params).Return([]sqlc.Subscriptions{
			{
				ID:                   uuid.New(),
				UserID:               userID,
				PlanID:               "premium",
				Status:               "active",
				StripeSubscriptionID: pgtype.Text{String: "sub_1", Valid: true},
			},
		}, nil)

		views, err := store.FindSubscriptionsByUser(ctx, userID, 5, 10)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "premium", views[0].PlanID)
		require.NotNil(t, views[0].StripeSubscriptionID)
		assert.Equal(t, "sub_1", *views[0].StripeSubscriptionID)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListSubscriptionsByUser(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.FindSubscriptionsByUser(ctx, userID, 20, 0)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
