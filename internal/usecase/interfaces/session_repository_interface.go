package interfaces

import (
	"context"

	"solar_marketplace/internal/domain/entities"
)

// ISessionRepository stores opaque session tokens. Tokens are unique
// (ErrDuplicate on reuse). GetByToken may return expired sessions; the
// access gate decides validity.

type ISessionRepository interface {
	Create(ctx context.Context, s entities.Session) (entities.Session, error)
	GetByToken(ctx context.Context, token string) (entities.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}
