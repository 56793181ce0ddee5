package usecase

import (
	"context"
	"strings"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// FeedLimit is how many notifications a feed returns.
const FeedLimit = 20

type Feed struct {
	Items  []entities.Notification
	Unread int
}

type INotificationUseCase interface {
	List(ctx context.Context, userID string) (Feed, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

type NotificationUseCase struct {
	notifications interfaces.INotificationRepository
	log           *zap.SugaredLogger
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(notifications interfaces.INotificationRepository, log *zap.SugaredLogger) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications, log: log.With("component", "usecase.notification")}
}

func (u *NotificationUseCase) List(ctx context.Context, userID string) (Feed, error) {
	items, err := u.notifications.ListByUserID(ctx, userID, FeedLimit)
	if err != nil {
		return Feed{}, err
	}
	unread, err := u.notifications.CountUnread(ctx, userID)
	if err != nil {
		return Feed{}, err
	}
	return Feed{Items: items, Unread: unread}, nil
}

func (u *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	return u.notifications.CountUnread(ctx, userID)
}

// MarkRead only touches the caller's own notifications; anyone else's id is
// reported as not found.
func (u *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID string) error {
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return ErrNotificationNotFound
	}
	found, err := u.notifications.MarkRead(ctx, notificationID, userID)
	if err != nil {
		u.log.Errorw("mark read failed", "notification_id", notificationID, "error", err)
		return err
	}
	if !found {
		return ErrNotificationNotFound
	}
	return nil
}
