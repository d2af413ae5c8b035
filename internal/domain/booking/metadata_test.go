//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-checkout/internal/domain/booking"
	"booking-checkout/internal/pkg/errs"
	"booking-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMetadata(t *testing.T) {
	t.Run("コンサルテーションのキー", func(t *testing.T) {
		b := builder.NewConsultationBuilder()
		md, err := booking.EncodeMetadata(b.BuildDomain())
		require.NoError(t, err)

		assert.Equal(t, map[string]string{
			"userId":      b.UserID.String(),
			"serviceType": "consultation",
			"date":        "2025-07-01",
			"time":        "10:00",
			"duration":    "60",
			"name":        "Ada Lovelace",
			"email":       "ada@example.com",
			"phone":       "+33 6 12 34 56 78",
		}, md)
	})

	t.Run("コーチングのキー", func(t *testing.T) {
		b := builder.NewCoachingBuilder()
		md, err := booking.EncodeMetadata(b.BuildDomain())
		require.NoError(t, err)

		assert.Equal(t, "coaching", md[booking.MetaServiceType])
		assert.Equal(t, "standard", md[booking.MetaPlan])
		assert.NotContains(t, md, booking.MetaDuration)
		assert.NotContains(t, md, booking.MetaDate)
	})

	t.Run("ピッチデッキは課金対象外", func(t *testing.T) {
		req := builder.NewCoachingBuilder().WithServiceType("pitch_deck").BuildDomain()
		_, err := booking.EncodeMetadata(req)
		assert.ErrorIs(t, err, booking.ErrServiceNotChargeable)
	})
}

func TestDecodeMetadata_RoundTrip(t *testing.T) {
	builders := map[string]*builder.BookingBuilder{
		"consultation 45":  builder.NewConsultationBuilder().WithDuration(45),
		"consultation 120": builder.NewConsultationBuilder().WithDuration(120).WithSlot("2025-12-31", "23:30"),
		"coaching basic":   builder.NewCoachingBuilder().WithPlan("basic"),
		"coaching premium": builder.NewCoachingBuilder().WithPlan("premium"),
	}

	for name, b := range builders {
		t.Run(name, func(t *testing.T) {
			req := b.BuildDomain()
			md, err := booking.EncodeMetadata(req)
			require.NoError(t, err)

			order, err := booking.DecodeMetadata(md)
			require.NoError(t, err)

			assert.Equal(t, req.UserID, order.UserID)
			assert.Equal(t, req.ServiceType, order.ServiceType)
			assert.Equal(t, req.Contact.Name, order.Contact.Name())
			assert.Equal(t, req.Contact.Email, order.Contact.Email())
			assert.Equal(t, req.Contact.Phone, order.Contact.Phone())

			if req.Consultation != nil {
				assert.Equal(t, req.Consultation.DurationMinutes, order.Duration.Minutes())
				assert.Equal(t, req.Consultation.Date, order.Slot.Date())
				assert.Equal(t, req.Consultation.Time, order.Slot.Time())
			}
			if req.Coaching != nil {
				assert.Equal(t, req.Coaching.Plan, order.Plan.String())
			}
		})
	}
}

func TestDecodeMetadata_SlotVector(t *testing.T) {
	md := builder.NewConsultationBuilder().WithSlot("2025-03-10", "14:30").WithDuration(90).BuildMetadata()
	assert.Equal(t, "2025-03-10", md[booking.MetaDate])
	assert.Equal(t, "14:30", md[booking.MetaTime])
	assert.Equal(t, "90", md[booking.MetaDuration])

	order, err := booking.DecodeMetadata(md)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10T14:30:00Z", order.Slot.Start().Format(time.RFC3339))
	assert.Equal(t, 90, order.Duration.Minutes())
}

func TestDecodeMetadata_Errors(t *testing.T) {
	valid := builder.NewConsultationBuilder().BuildMetadata()

	testCases := []struct {
		name   string
		mutate func(map[string]string)
		errIs  error
	}{
		{
			name:   "userIdなし",
			mutate: func(md map[string]string) { delete(md, booking.MetaUserID) },
			errIs:  booking.ErrMissingMetadata,
		},
		{
			name:   "userIdが空白",
			mutate: func(md map[string]string) { md[booking.MetaUserID] = "  " },
			errIs:  booking.ErrMissingMetadata,
		},
		{
			name:   "userIdがUUIDでない",
			mutate: func(md map[string]string) { md[booking.MetaUserID] = "user-42" },
			errIs:  booking.ErrInvalidMetadata,
		},
		{
			name:   "durationが数値でない",
			mutate: func(md map[string]string) { md[booking.MetaDuration] = "an hour" },
			errIs:  booking.ErrInvalidMetadata,
		},
		{
			name:   "durationが許可外",
			mutate: func(md map[string]string) { md[booking.MetaDuration] = "50" },
			errIs:  booking.ErrInvalidMetadata,
		},
		{
			name:   "日付なし",
			mutate: func(md map[string]string) { delete(md, booking.MetaDate) },
			errIs:  booking.ErrInvalidMetadata,
		},
		{
			name: "コーチングでプラン不正",
			mutate: func(md map[string]string) {
				md[booking.MetaServiceType] = "coaching"
				md[booking.MetaPlan] = "gold"
			},
			errIs: booking.ErrInvalidMetadata,
		},
		{
			name:   "未知のサービス種別",
			mutate: func(md map[string]string) { md[booking.MetaServiceType] = "massage" },
			errIs:  booking.ErrUnrecognizedService,
		},
		{
			name:   "サービス種別なし",
			mutate: func(md map[string]string) { delete(md, booking.MetaServiceType) },
			errIs:  booking.ErrUnrecognizedService,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			md := make(map[string]string, len(valid))
			for k, v := range valid {
				md[k] = v
			}
			tc.mutate(md)

			_, err := booking.DecodeMetadata(md)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
		})
	}

	t.Run("連絡先が空でも復元できる", func(t *testing.T) {
		md := builder.NewCoachingBuilder().BuildMetadata()
		delete(md, booking.MetaName)
		delete(md, booking.MetaEmail)
		delete(md, booking.MetaPhone)

		order, err := booking.DecodeMetadata(md)
		require.NoError(t, err)
		assert.True(t, order.Contact.IsZero())
	})
}
