package interfaces

import "context"

// IEventPublisher pushes domain events to an external broker. Publishing is
// best-effort; callers log failures and carry on.
type IEventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}
