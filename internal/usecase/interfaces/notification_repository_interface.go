package interfaces

import (
	"context"

	"solar_marketplace/internal/domain/entities"
)

// INotificationRepository abstracts the per-user notification feed.
// MarkRead only touches a notification owned by userID and reports whether
// one was found.

type INotificationRepository interface {
	CreateMany(ctx context.Context, ns []entities.Notification) error
	ListByUserID(ctx context.Context, userID string, limit int) ([]entities.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id, userID string) (bool, error)
}
