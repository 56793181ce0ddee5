package postgres

import (
	"context"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

var _ interfaces.INotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateMany(ctx context.Context, ns []entities.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	ms := mapModels(ns, toNotificationModel)
	return translate(r.db.WithContext(ctx).CreateInBatches(&ms, 100).Error)
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]entities.Notification, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var ms []notificationModel
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}
	return mapModels(ms, notificationModel.entity), nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).Count(&n).Error
	return int(n), err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&notificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).Update("read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
