package memory

import (
	"context"
	"sort"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"
)

type NotificationRepository struct {
	s *Store
}

var _ interfaces.INotificationRepository = (*NotificationRepository)(nil)

func (r *NotificationRepository) CreateMany(_ context.Context, ns []entities.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range ns {
		if _, ok := r.s.users[n.RecipientID]; !ok {
			return interfaces.ErrParentNotFound
		}
	}
	r.s.notifications = append(r.s.notifications, ns...)
	return nil
}

func (r *NotificationRepository) ListByUserID(_ context.Context, userID string, limit int) ([]entities.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Notification, 0)
	for _, n := range r.s.notifications {
		if n.RecipientID == userID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return limitSlice(out, limit), nil
}

func (r *NotificationRepository) CountUnread(_ context.Context, userID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, item := range r.s.notifications {
		if item.RecipientID == userID && !item.Read {
			n++
		}
	}
	return n, nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, id, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.notifications {
		if r.s.notifications[i].ID == id && r.s.notifications[i].RecipientID == userID {
			r.s.notifications[i].Read = true
			return true, nil
		}
	}
	return false, nil
}
