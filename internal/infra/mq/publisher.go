package mq

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"booking-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKindTopic = "topic"

var ErrPublisherClosed = errs.New("publisher is closed")

// session is one broker connection with its publishing channel.
type session interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type amqpSession struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func (s *amqpSession) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return s.ch.PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}

// IsClosed is true once either the channel or the connection has been shut down by the broker.
func (s *amqpSession) IsClosed() bool {
	return s.conn.IsClosed() || s.ch.IsClosed()
}

func (s *amqpSession) Close() error {
	_ = s.ch.Close()
	return s.conn.Close()
}

func dialSession(url, exchange string) (session, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, exchangeKindTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "declare exchange %s", exchange)
	}
	return &amqpSession{conn: conn, ch: ch}, nil
}

// Publisher sends JSON domain events to a durable topic exchange.
// A session dropped by the broker is redialed on the next publish.
type Publisher struct {
	exchange string
	dial     func() (session, error)

	mu     sync.Mutex // amqp channels are not safe for concurrent publishing
	sess   session
	closed bool
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	p := newPublisher(exchange, func() (session, error) { return dialSession(url, exchange) })

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := p.session(); err != nil {
		return nil, err
	}
	return p, nil
}

func newPublisher(exchange string, dial func() (session, error)) *Publisher {
	return &Publisher{exchange: exchange, dial: dial}
}

// session returns a live session, redialing when the previous one was closed. p.mu must be held.
func (p *Publisher) session() (session, error) {
	if p.closed {
		return nil, ErrPublisherClosed
	}
	if p.sess != nil && !p.sess.IsClosed() {
		return p.sess, nil
	}
	if p.sess != nil {
		_ = p.sess.Close()
		p.sess = nil
		slog.Warn("rabbitmq session lost, reconnecting", "exchange", p.exchange)
	}

	sess, err := p.dial()
	if err != nil {
		return nil, err
	}
	p.sess = sess
	return sess, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, routingKey string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Type:         routingKey,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	sess, err := p.session()
	if err != nil {
		return errs.Wrapf(err, "publish %s", routingKey)
	}
	err = sess.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	if err != nil && sess.IsClosed() {
		// the broker dropped us mid-publish; one retry on a fresh session
		if sess, err = p.session(); err == nil {
			err = sess.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
		}
	}
	if err != nil {
		return errs.Wrapf(err, "publish %s", routingKey)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.sess == nil {
		return nil
	}
	err := p.sess.Close()
	p.sess = nil
	return err
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishJSON(_ context.Context, routingKey string, _ any) error {
	slog.Debug("event publishing disabled", "routing_key", routingKey)
	return nil
}
