//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"booking-checkout/internal/domain/appointment"
	"booking-checkout/internal/domain/pitch"
	"booking-checkout/internal/domain/subscription"
	"booking-checkout/internal/pkg/clock"
	"booking-checkout/internal/pkg/errs"
	"booking-checkout/internal/usecase/commands"
	"booking-checkout/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingToolCommands() (commands.BookingToolCommands, *memstore.Store) {
	store := memstore.New()
	// a nil publisher skips the broadcast; notification jobs are still queued
	return commands.NewBookingToolCommands(store, nil, clock.NewMockClock(fixedNow)), store
}

func TestBookingTool_ScheduleAppointment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	valid := commands.ScheduleAppointmentParams{
		UserID:   userID,
		Date:     "2025-07-02",
		Time:     "16:15",
		Duration: 45,
		Name:     "Ada",
		Email:    "ada@example.com",
	}

	t.Run("success: unpaid confirmed appointment", func(t *testing.T) {
		cmds, store := newBookingToolCommands()

		id, err := cmds.ScheduleAppointment(ctx, valid)
		require.NoError(t, err)

		appts := store.Appointments()
		require.Len(t, appts, 1)
		assert.Equal(t, id, appts[0].ID())
		assert.Equal(t, userID, appts[0].UserID())
		assert.Equal(t, appointment.StatusConfirmed, appts[0].Status())
		assert.Nil(t, appts[0].StripePaymentID())
		assert.Len(t, store.Notifications(), 1)
	})

	t.Run("contact details are optional", func(t *testing.T) {
		cmds, store := newBookingToolCommands()
		p := valid
		p.Name, p.Email = "", ""

		_, err := cmds.ScheduleAppointment(ctx, p)
		require.NoError(t, err)
		assert.True(t, store.Appointments()[0].Contact().IsZero())
	})

	t.Run("error cases", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*commands.ScheduleAppointmentParams)
			errIs  error
		}{
			{name: "anonymous caller", mutate: func(p *commands.ScheduleAppointmentParams) { p.UserID = uuid.Nil }, errIs: commands.ErrAuthenticationRequired},
			{name: "duration 30", mutate: func(p *commands.ScheduleAppointmentParams) { p.Duration = 30 }, errIs: commands.ErrValidation},
			{name: "bad date", mutate: func(p *commands.ScheduleAppointmentParams) { p.Date = "tomorrow" }, errIs: commands.ErrValidation},
			{name: "bad time", mutate: func(p *commands.ScheduleAppointmentParams) { p.Time = "4pm" }, errIs: commands.ErrValidation},
			{name: "bad email", mutate: func(p *commands.ScheduleAppointmentParams) { p.Email = "ada" }, errIs: commands.ErrValidation},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				cmds, store := newBookingToolCommands()
				p := valid
				tc.mutate(&p)

				id, err := cmds.ScheduleAppointment(ctx, p)
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				assert.Equal(t, uuid.Nil, id)
				assert.Empty(t, store.Appointments())
			})
		}
	})

	t.Run("persistence failure rolls back the notification", func(t *testing.T) {
		cmds, store := newBookingToolCommands()
		store.FailOn["notifications.create"] = errors.New("disk full")

		_, err := cmds.ScheduleAppointment(ctx, valid)
		assert.True(t, errs.Is(err, commands.ErrPersistenceFailed))
		assert.Empty(t, store.Appointments())
		assert.Empty(t, store.Notifications())
	})
}

func TestBookingTool_SubscribeCoaching(t *testing.T) {
	ctx := context.Background()

	t.Run("success: active subscription without provider refs", func(t *testing.T) {
		cmds, store := newBookingToolCommands()
		userID := uuid.New()

		id, err := cmds.SubscribeCoaching(ctx, commands.SubscribeCoachingParams{UserID: userID, Plan: "premium"})
		require.NoError(t, err)

		subs := store.Subscriptions()
		require.Len(t, subs, 1)
		assert.Equal(t, id, subs[0].ID())
		assert.Equal(t, subscription.PlanPremium, subs[0].Plan())
		assert.Equal(t, subscription.StatusActive, subs[0].Status())
		assert.Equal(t, subscription.StripeRefs{}, subs[0].StripeRefs())
	})

	t.Run("unknown plan", func(t *testing.T) {
		cmds, store := newBookingToolCommands()
		_, err := cmds.SubscribeCoaching(ctx, commands.SubscribeCoachingParams{UserID: uuid.New(), Plan: "ultimate"})
		assert.True(t, errs.Is(err, commands.ErrValidation))
		assert.Empty(t, store.Subscriptions())
	})

	t.Run("anonymous caller", func(t *testing.T) {
		cmds, _ := newBookingToolCommands()
		_, err := cmds.SubscribeCoaching(ctx, commands.SubscribeCoachingParams{Plan: "basic"})
		assert.True(t, errs.Is(err, commands.ErrAuthenticationRequired))
	})
}

func TestBookingTool_RequestPitchDeck(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous request is accepted", func(t *testing.T) {
		cmds, store := newBookingToolCommands()

		id, err := cmds.RequestPitchDeck(ctx, commands.RequestPitchDeckParams{
			Project: "GalowClub",
			Name:    "Investor",
			Email:   "vc@example.com",
			Role:    " Partner ",
		})
		require.NoError(t, err)

		reqs := store.PitchRequests()
		require.Len(t, reqs, 1)
		assert.Equal(t, id, reqs[0].ID())
		assert.Nil(t, reqs[0].UserID())
		assert.Equal(t, pitch.ProjectGalowClub, reqs[0].Project())
		assert.Equal(t, "Partner", reqs[0].Role())
		assert.Equal(t, pitch.StatusSubmitted, reqs[0].Status())
	})

	t.Run("authenticated request keeps the owner", func(t *testing.T) {
		cmds, store := newBookingToolCommands()
		owner := uuid.New()

		_, err := cmds.RequestPitchDeck(ctx, commands.RequestPitchDeckParams{UserID: &owner, Project: "Perspectiv"})
		require.NoError(t, err)
		require.NotNil(t, store.PitchRequests()[0].UserID())
		assert.Equal(t, owner, *store.PitchRequests()[0].UserID())
	})

	t.Run("unknown project", func(t *testing.T) {
		cmds, store := newBookingToolCommands()
		_, err := cmds.RequestPitchDeck(ctx, commands.RequestPitchDeckParams{Project: "Acme"})
		assert.True(t, errs.Is(err, commands.ErrValidation))
		assert.Empty(t, store.PitchRequests())
	})
}
