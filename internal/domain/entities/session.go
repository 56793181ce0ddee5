package entities

import "time"

// Session binds an opaque token to a user until ExpiresAt.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired is evaluated lazily at lookup time; nothing sweeps sessions.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
