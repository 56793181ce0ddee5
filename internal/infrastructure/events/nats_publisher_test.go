package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConn struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (c *recordingConn) Publish(subject string, data []byte) error {
	if c.err != nil {
		return c.err
	}
	c.subjects = append(c.subjects, subject)
	c.payloads = append(c.payloads, data)
	return nil
}

func TestNATSPublisher_Publish(t *testing.T) {
	at := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	t.Run("prefixes subject and wraps payload", func(t *testing.T) {
		conn := &recordingConn{}
		p := NewNATSPublisher(conn, "solar.")
		p.now = func() time.Time { return at }

		err := p.Publish(context.Background(), "quotation.accepted", map[string]string{"quotation_id": "q1"})
		require.NoError(t, err)
		require.Equal(t, []string{"solar.quotation.accepted"}, conn.subjects)

		var env struct {
			Type       string            `json:"type"`
			OccurredAt time.Time         `json:"occurred_at"`
			Data       map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(conn.payloads[0], &env))
		assert.Equal(t, "quotation.accepted", env.Type)
		assert.True(t, env.OccurredAt.Equal(at))
		assert.Equal(t, "q1", env.Data["quotation_id"])
	})

	t.Run("empty prefix", func(t *testing.T) {
		conn := &recordingConn{}
		p := NewNATSPublisher(conn, "")

		require.NoError(t, p.Publish(context.Background(), "request.created", nil))
		assert.Equal(t, []string{"request.created"}, conn.subjects)
	})

	t.Run("connection error is wrapped", func(t *testing.T) {
		boom := errors.New("no servers")
		p := NewNATSPublisher(&recordingConn{err: boom}, "solar")

		err := p.Publish(context.Background(), "request.created", nil)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context", func(t *testing.T) {
		conn := &recordingConn{}
		p := NewNATSPublisher(conn, "solar")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, p.Publish(ctx, "request.created", nil), context.Canceled)
		assert.Empty(t, conn.subjects)
	})
}
