package memory

import (
	"context"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"
)

type SessionRepository struct {
	s *Store
}

var _ interfaces.ISessionRepository = (*SessionRepository)(nil)

func (r *SessionRepository) Create(_ context.Context, sess entities.Session) (entities.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, taken := r.s.sessions[sess.Token]; taken {
		return entities.Session{}, interfaces.ErrDuplicate
	}
	r.s.sessions[sess.Token] = sess
	return sess, nil
}

func (r *SessionRepository) GetByToken(_ context.Context, token string) (entities.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.sessions[token], nil
}

func (r *SessionRepository) DeleteByToken(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.sessions, token)
	return nil
}
