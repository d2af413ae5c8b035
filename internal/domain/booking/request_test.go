//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"booking-checkout/internal/domain/appointment"
	"booking-checkout/internal/domain/booking"
	"booking-checkout/internal/domain/contact"
	"booking-checkout/internal/domain/subscription"
	"booking-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestCase struct {
	name   string
	base   *builder.BookingBuilder
	mutate func(*booking.Request)
	errIs  error
}

func TestRequest_Validate(t *testing.T) {
	runRequestCases(t, []requestCase{
		{
			name: "コンサルテーションOK",
			base: builder.NewConsultationBuilder(),
		},
		{
			name: "コーチングOK",
			base: builder.NewCoachingBuilder(),
		},
		{
			name:   "ピッチデッキは詳細なしでOK",
			base:   builder.NewConsultationBuilder().WithServiceType("pitch_deck"),
			mutate: func(r *booking.Request) { r.Consultation = nil },
		},
		{
			name:  "未知のサービス種別NG",
			base:  builder.NewCoachingBuilder().WithServiceType("massage"),
			errIs: booking.ErrUnknownServiceType,
		},
		{
			name:   "コンサルテーション詳細なしNG",
			base:   builder.NewConsultationBuilder(),
			mutate: func(r *booking.Request) { r.Consultation = nil },
			errIs:  booking.ErrMissingConsultation,
		},
		{
			name:   "コーチング詳細なしNG",
			base:   builder.NewCoachingBuilder(),
			mutate: func(r *booking.Request) { r.Coaching = nil },
			errIs:  booking.ErrMissingCoaching,
		},
		{
			name:   "種別と詳細の不一致NG",
			base:   builder.NewConsultationBuilder(),
			mutate: func(r *booking.Request) { r.Coaching = &booking.CoachingDetails{Plan: "basic"} },
			errIs:  booking.ErrConflictingDetails,
		},
		{
			name:  "許可されていない時間NG",
			base:  builder.NewConsultationBuilder().WithDuration(30),
			errIs: appointment.ErrInvalidDuration,
		},
		{
			name:  "日付形式NG",
			base:  builder.NewConsultationBuilder().WithSlot("01/07/2025", "10:00"),
			errIs: appointment.ErrInvalidDate,
		},
		{
			name:  "時刻形式NG",
			base:  builder.NewConsultationBuilder().WithSlot("2025-07-01", "25:99"),
			errIs: appointment.ErrInvalidTime,
		},
		{
			name:  "未知のプランNG",
			base:  builder.NewCoachingBuilder().WithPlan("gold"),
			errIs: subscription.ErrUnknownPlan,
		},
		{
			name:  "名前なしNG",
			base:  builder.NewCoachingBuilder().WithContact(" ", "a@example.com", ""),
			errIs: contact.ErrEmptyName,
		},
		{
			name:  "名前が長すぎるNG",
			base:  builder.NewCoachingBuilder().WithContact(strings.Repeat("A", 201), "a@example.com", ""),
			errIs: contact.ErrNameTooLong,
		},
		{
			name:  "メール形式NG",
			base:  builder.NewCoachingBuilder().WithContact("A", "not-an-email", ""),
			errIs: contact.ErrInvalidEmail,
		},
		{
			name:  "電話番号が長すぎるNG",
			base:  builder.NewCoachingBuilder().WithContact("A", "a@example.com", strings.Repeat("1", 600)),
			errIs: contact.ErrPhoneTooLong,
		},
	})
}

func runRequestCases(t *testing.T, cases []requestCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.base.BuildDomain()
			if tc.mutate != nil {
				tc.mutate(&req)
			}

			err := req.Validate()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRequest_Normalize(t *testing.T) {
	t.Run("連絡先の空白を除去したコピーを返す", func(t *testing.T) {
		raw := builder.NewCoachingBuilder().WithContact("  A  ", " a@b.com ", " +33 1 ").BuildDomain()

		got, err := raw.Normalize()
		require.NoError(t, err)
		assert.Equal(t, booking.ContactDetails{Name: "A", Email: "a@b.com", Phone: "+33 1"}, got.Contact)
		assert.Equal(t, raw.Coaching, got.Coaching)
		assert.Equal(t, raw.UserID, got.UserID)
		assert.Equal(t, " a@b.com ", raw.Contact.Email, "receiver must not be modified")
	})

	t.Run("不正なリクエストはゼロ値とエラー", func(t *testing.T) {
		got, err := builder.NewCoachingBuilder().WithPlan("gold").BuildDomain().Normalize()
		assert.ErrorIs(t, err, subscription.ErrUnknownPlan)
		assert.Equal(t, booking.Request{}, got)
	})

	t.Run("正規化後のメタデータは往復で一致する", func(t *testing.T) {
		raw := builder.NewConsultationBuilder().WithContact("  Ada  ", " ada@example.com ", "").BuildDomain()
		req, err := raw.Normalize()
		require.NoError(t, err)

		md, err := booking.EncodeMetadata(req)
		require.NoError(t, err)
		order, err := booking.DecodeMetadata(md)
		require.NoError(t, err)
		assert.Equal(t, "Ada", order.Contact.Name())
		assert.Equal(t, "ada@example.com", order.Contact.Email())
		assert.Equal(t, md[booking.MetaName], order.Contact.Name())
	})
}

func TestRequest_IsChargeable(t *testing.T) {
	assert.True(t, builder.NewConsultationBuilder().BuildDomain().IsChargeable())
	assert.True(t, builder.NewCoachingBuilder().BuildDomain().IsChargeable())
	assert.False(t, builder.NewCoachingBuilder().WithServiceType("pitch_deck").BuildDomain().IsChargeable())
}
