// Package events publishes domain events to NATS. Publishing is fire and
// forget; the use cases already treat a failed publish as non-fatal.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"solar_marketplace/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Conn is the part of *nats.Conn the publisher uses.
type Conn interface {
	Publish(subject string, data []byte) error
}

var _ Conn = (*nats.Conn)(nil)

// Envelope wraps every payload so consumers can route on Type without
// decoding Data.
type Envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

type NATSPublisher struct {
	conn   Conn
	prefix string
	now    func() time.Time
}

var _ interfaces.IEventPublisher = (*NATSPublisher)(nil)

func NewNATSPublisher(conn Conn, prefix string) *NATSPublisher {
	return &NATSPublisher{conn: conn, prefix: strings.TrimSuffix(prefix, "."), now: time.Now}
}

// Publish sends payload on "<prefix>.<subject>".
func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full := subject
	if p.prefix != "" {
		full = p.prefix + "." + subject
	}
	data, err := json.Marshal(Envelope{Type: subject, OccurredAt: p.now().UTC(), Data: payload})
	if err != nil {
		return fmt.Errorf("encode event %s: %w", full, err)
	}
	if err := p.conn.Publish(full, data); err != nil {
		return fmt.Errorf("publish %s: %w", full, err)
	}
	return nil
}

// Connect dials NATS with reconnects enabled and connection state logged.
func Connect(url string, log *zap.SugaredLogger) (*nats.Conn, error) {
	log = log.With("component", "events.nats")
	conn, err := nats.Connect(url,
		nats.Name("solar-marketplace"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warnw("disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infow("reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(*nats.Conn) {
			log.Infow("connection closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return conn, nil
}

// NopPublisher drops every event.
type NopPublisher struct{}

var _ interfaces.IEventPublisher = NopPublisher{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
