//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for command tests.
// Within runs serially and discards every write when fn returns an error.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"booking-checkout/internal/domain/appointment"
	"booking-checkout/internal/domain/pitch"
	"booking-checkout/internal/domain/subscription"
	"booking-checkout/internal/infra"
	sqlc "booking-checkout/internal/infra/sqlc/generated"
	"booking-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type WebhookEvent struct {
	EventID   string
	EventType string
	Outcome   string
	ResultID  *uuid.UUID
}

type NotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type tables struct {
	appointments  map[uuid.UUID]*appointment.Appointment
	subscriptions map[uuid.UUID]*subscription.Subscription
	pitchRequests map[uuid.UUID]*pitch.Request
	webhookEvents map[string]WebhookEvent
	notifications []NotificationJob
}

func (t tables) clone() tables {
	return tables{
		appointments:  maps.Clone(t.appointments),
		subscriptions: maps.Clone(t.subscriptions),
		pitchRequests: maps.Clone(t.pitchRequests),
		webhookEvents: maps.Clone(t.webhookEvents),
		notifications: slices.Clone(t.notifications),
	}
}

type Store struct {
	mu   sync.Mutex
	data tables

	// FailOn makes the named operation fail, e.g. "appointments.create".
	FailOn map[string]error
}

func New() *Store {
	return &Store{
		data: tables{
			appointments:  map[uuid.UUID]*appointment.Appointment{},
			subscriptions: map[uuid.UUID]*subscription.Subscription{},
			pitchRequests: map[uuid.UUID]*pitch.Request{},
			webhookEvents: map[string]WebhookEvent{},
		},
		FailOn: map[string]error{},
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) Appointments() []*appointment.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.data.appointments))
}

func (s *Store) Subscriptions() []*subscription.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.data.subscriptions))
}

func (s *Store) PitchRequests() []*pitch.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.data.pitchRequests))
}

func (s *Store) WebhookEvent(eventID string) (WebhookEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.data.webhookEvents[eventID]
	return ev, ok
}

func (s *Store) Notifications() []NotificationJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.data.notifications)
}

// memTx runs with Store.mu held.
type memTx struct {
	s *Store
}

func (t *memTx) Appointments() shared.AppointmentRepository   { return appointmentRepo{t.s} }
func (t *memTx) Subscriptions() shared.SubscriptionRepository { return subscriptionRepo{t.s} }
func (t *memTx) PitchRequests() shared.PitchRequestRepository { return pitchRequestRepo{t.s} }
func (t *memTx) WebhookEvents() shared.WebhookEventRepository { return webhookEventRepo{t.s} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t.s} }
func (t *memTx) DB() sqlc.DBTX                                { return nil }

func (s *Store) injected(op string) error {
	if err, ok := s.FailOn[op]; ok {
		return infra.WrapRepoErr("injected failure: "+op, err)
	}
	return nil
}

func duplicateKey(msg string) error {
	return infra.WrapRepoErr(msg, &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
}

type appointmentRepo struct{ s *Store }

func (r appointmentRepo) Create(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	if err := r.s.injected("appointments.create"); err != nil {
		return uuid.Nil, err
	}
	if pid := a.StripePaymentID(); pid != nil {
		for _, existing := range r.s.data.appointments {
			if other := existing.StripePaymentID(); other != nil && *other == *pid {
				return uuid.Nil, duplicateKey("failed to create appointment")
			}
		}
	}
	r.s.data.appointments[a.ID()] = a
	return a.ID(), nil
}

type subscriptionRepo struct{ s *Store }

func (r subscriptionRepo) Create(_ context.Context, _ sqlc.DBTX, sub *subscription.Subscription) (uuid.UUID, error) {
	if err := r.s.injected("subscriptions.create"); err != nil {
		return uuid.Nil, err
	}
	if sid := sub.StripeRefs().SubscriptionID; sid != nil {
		for _, existing := range r.s.data.subscriptions {
			if other := existing.StripeRefs().SubscriptionID; other != nil && *other == *sid {
				return uuid.Nil, duplicateKey("failed to create subscription")
			}
		}
	}
	r.s.data.subscriptions[sub.ID()] = sub
	return sub.ID(), nil
}

type pitchRequestRepo struct{ s *Store }

func (r pitchRequestRepo) Create(_ context.Context, _ sqlc.DBTX, req *pitch.Request) (uuid.UUID, error) {
	if err := r.s.injected("pitch_requests.create"); err != nil {
		return uuid.Nil, err
	}
	r.s.data.pitchRequests[req.ID()] = req
	return req.ID(), nil
}

type webhookEventRepo struct{ s *Store }

func (r webhookEventRepo) TryInsert(_ context.Context, _ sqlc.DBTX, eventID, eventType string) (bool, error) {
	if err := r.s.injected("webhook_events.try_insert"); err != nil {
		return false, err
	}
	if _, ok := r.s.data.webhookEvents[eventID]; ok {
		return false, nil
	}
	r.s.data.webhookEvents[eventID] = WebhookEvent{EventID: eventID, EventType: eventType, Outcome: "processing"}
	return true, nil
}

func (r webhookEventRepo) Complete(_ context.Context, _ sqlc.DBTX, eventID, outcome string, resultID *uuid.UUID) error {
	ev, ok := r.s.data.webhookEvents[eventID]
	if !ok {
		return infra.WrapRepoErr("webhook event not found", nil, infra.KindNotFound)
	}
	ev.Outcome = outcome
	ev.ResultID = resultID
	r.s.data.webhookEvents[eventID] = ev
	return nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if err := r.s.injected("notifications.create"); err != nil {
		return err
	}
	r.s.data.notifications = append(r.s.data.notifications, NotificationJob{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   runAt,
	})
	return nil
}
