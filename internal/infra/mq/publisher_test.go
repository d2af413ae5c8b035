//go:build unit

package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	closed     bool
	failNext   error
	closeCalls int
	published  []amqp.Publishing
	keys       []string
}

func (s *fakeSession) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return err
	}
	s.keys = append(s.keys, key)
	s.published = append(s.published, msg)
	return nil
}

func (s *fakeSession) IsClosed() bool { return s.closed }

func (s *fakeSession) Close() error {
	s.closeCalls++
	s.closed = true
	return nil
}

type fakeDialer struct {
	sessions []*fakeSession
	err      error
}

func (d *fakeDialer) dial() (session, error) {
	if d.err != nil {
		return nil, d.err
	}
	s := &fakeSession{}
	d.sessions = append(d.sessions, s)
	return s, nil
}

func TestPublisher_PublishJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("JSONをpersistentで送信", func(t *testing.T) {
		d := &fakeDialer{}
		p := newPublisher("booking.events", d.dial)

		require.NoError(t, p.PublishJSON(ctx, "booking.appointment.confirmed", map[string]string{"id": "a1"}))

		require.Len(t, d.sessions, 1)
		sent := d.sessions[0].published
		require.Len(t, sent, 1)
		assert.Equal(t, "application/json", sent[0].ContentType)
		assert.Equal(t, amqp.Persistent, sent[0].DeliveryMode)
		assert.Equal(t, "booking.appointment.confirmed", sent[0].Type)
		assert.NotEmpty(t, sent[0].MessageId)

		var body map[string]string
		require.NoError(t, json.Unmarshal(sent[0].Body, &body))
		assert.Equal(t, "a1", body["id"])
	})

	t.Run("切断されたセッションは次の送信で再接続", func(t *testing.T) {
		d := &fakeDialer{}
		p := newPublisher("booking.events", d.dial)
		require.NoError(t, p.PublishJSON(ctx, "k1", 1))

		d.sessions[0].closed = true
		require.NoError(t, p.PublishJSON(ctx, "k2", 2))

		require.Len(t, d.sessions, 2)
		assert.Equal(t, []string{"k1"}, d.sessions[0].keys)
		assert.Equal(t, []string{"k2"}, d.sessions[1].keys)
		assert.Equal(t, 1, d.sessions[0].closeCalls)
	})

	t.Run("送信中に切断されたら新しいセッションで一度だけ再送", func(t *testing.T) {
		d := &fakeDialer{}
		p := newPublisher("booking.events", d.dial)
		require.NoError(t, p.PublishJSON(ctx, "k1", 1))

		first := d.sessions[0]
		first.failNext = amqp.ErrClosed
		p.sess = &closingSession{fakeSession: first}

		require.NoError(t, p.PublishJSON(ctx, "k2", 2))
		require.Len(t, d.sessions, 2)
		assert.Equal(t, []string{"k2"}, d.sessions[1].keys)
	})

	t.Run("生存中のセッションのエラーは再送しない", func(t *testing.T) {
		d := &fakeDialer{}
		p := newPublisher("booking.events", d.dial)
		require.NoError(t, p.PublishJSON(ctx, "k1", 1))

		d.sessions[0].failNext = errors.New("flow control")
		err := p.PublishJSON(ctx, "k2", 2)
		require.Error(t, err)
		assert.Len(t, d.sessions, 1)
	})

	t.Run("再接続に失敗したらエラー", func(t *testing.T) {
		d := &fakeDialer{}
		p := newPublisher("booking.events", d.dial)
		require.NoError(t, p.PublishJSON(ctx, "k1", 1))

		d.sessions[0].closed = true
		d.err = errors.New("connection refused")
		err := p.PublishJSON(ctx, "k2", 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")

		d.err = nil
		require.NoError(t, p.PublishJSON(ctx, "k3", 3), "recovers once the broker is back")
	})

	t.Run("Close後は送信不可", func(t *testing.T) {
		d := &fakeDialer{}
		p := newPublisher("booking.events", d.dial)
		require.NoError(t, p.PublishJSON(ctx, "k1", 1))
		require.NoError(t, p.Close())

		err := p.PublishJSON(ctx, "k2", 2)
		assert.ErrorIs(t, err, ErrPublisherClosed)
		assert.Len(t, d.sessions, 1)
	})
}

// closingSession reports open until its first publish fails.
type closingSession struct {
	*fakeSession
	failed bool
}

func (s *closingSession) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	err := s.fakeSession.PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
	if err != nil {
		s.failed = true
	}
	return err
}

func (s *closingSession) IsClosed() bool { return s.failed }
