//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"booking-checkout/internal/domain/appointment"
	"booking-checkout/internal/domain/contact"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDuration(t *testing.T) {
	for _, m := range []int{45, 60, 75, 90, 105, 120} {
		d, err := appointment.NewDuration(m)
		require.NoError(t, err)
		assert.Equal(t, m, d.Minutes())
	}

	for _, m := range []int{0, -60, 30, 50, 61, 135, 240} {
		_, err := appointment.NewDuration(m)
		assert.ErrorIs(t, err, appointment.ErrInvalidDuration, "minutes=%d", m)
	}
}

func TestNewSlot(t *testing.T) {
	t.Run("UTCの開始時刻になる", func(t *testing.T) {
		slot, err := appointment.NewSlot("2025-07-01", "09:30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC), slot.Start())
		assert.Equal(t, "2025-07-01", slot.Date())
		assert.Equal(t, "09:30", slot.Time())
	})

	t.Run("不正な値NG", func(t *testing.T) {
		testCases := []struct {
			date, clock string
			errIs       error
		}{
			{"2025-13-01", "09:30", appointment.ErrInvalidDate},
			{"", "09:30", appointment.ErrInvalidDate},
			{"2025-07-01", "9h30", appointment.ErrInvalidTime},
			{"2025-07-01", "24:00", appointment.ErrInvalidTime},
			{"2025-07-01", "", appointment.ErrInvalidTime},
		}
		for _, tc := range testCases {
			_, err := appointment.NewSlot(tc.date, tc.clock)
			assert.ErrorIs(t, err, tc.errIs, "date=%q time=%q", tc.date, tc.clock)
		}
	})
}

func TestNewAppointment(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	d, _ := appointment.NewDuration(60)
	slot, _ := appointment.NewSlot("2025-07-01", "10:00")
	info, _ := contact.NewPartialInfo("Ada", "ada@example.com", "")

	t.Run("確定ステータスで作成", func(t *testing.T) {
		pid := "pi_123"
		appt, err := appointment.New(uuid.New(), d, slot, info, &pid, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, appt.ID())
		assert.Equal(t, appointment.StatusConfirmed, appt.Status())
		assert.Equal(t, slot.Start(), appt.Start())
		assert.Equal(t, &pid, appt.StripePaymentID())
		assert.Equal(t, now, appt.CreatedAt())
	})

	t.Run("ユーザーなしNG", func(t *testing.T) {
		_, err := appointment.New(uuid.Nil, d, slot, info, nil, now)
		assert.ErrorIs(t, err, appointment.ErrMissingUser)
	})

	t.Run("ゼロ値の時間NG", func(t *testing.T) {
		_, err := appointment.New(uuid.New(), appointment.Duration(0), slot, info, nil, now)
		assert.ErrorIs(t, err, appointment.ErrInvalidDuration)
	})
}
