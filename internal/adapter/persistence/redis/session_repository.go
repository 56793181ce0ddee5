// Package redis keeps sessions in Redis so every API replica shares them and
// expired tokens fall out on their own.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	goredis "github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// Client is the subset of *goredis.Client the session store needs.
type Client interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *goredis.BoolCmd
	Get(ctx context.Context, key string) *goredis.StringCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

var _ Client = (*goredis.Client)(nil)

type sessionValue struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionRepository struct {
	rdb Client
	now func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(rdb Client) *SessionRepository {
	return &SessionRepository{rdb: rdb, now: time.Now}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Create stores the session with a TTL equal to its remaining lifetime.
func (r *SessionRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	raw, err := json.Marshal(sessionValue{ID: s.ID, UserID: s.UserID, ExpiresAt: s.ExpiresAt, CreatedAt: s.CreatedAt})
	if err != nil {
		return entities.Session{}, err
	}
	ttl := max(s.ExpiresAt.Sub(r.now()), time.Second)
	ok, err := r.rdb.SetNX(ctx, sessionKey(s.Token), raw, ttl).Result()
	if err != nil {
		return entities.Session{}, fmt.Errorf("store session: %w", err)
	}
	if !ok {
		return entities.Session{}, interfaces.ErrDuplicate
	}
	return s, nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (entities.Session, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("load session: %w", err)
	}
	var v sessionValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return entities.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return entities.Session{ID: v.ID, UserID: v.UserID, Token: token, ExpiresAt: v.ExpiresAt, CreatedAt: v.CreatedAt}, nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.rdb.Del(ctx, sessionKey(token)).Err()
}
