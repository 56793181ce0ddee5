package postgres

import (
	"context"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type QuotationRequestRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuotationRequestRepository = (*QuotationRequestRepository)(nil)

func NewQuotationRequestRepository(db *gorm.DB) *QuotationRequestRepository {
	return &QuotationRequestRepository{db: db}
}

func (r *QuotationRequestRepository) Create(ctx context.Context, q entities.QuotationRequest) (entities.QuotationRequest, error) {
	m := toRequestModel(q)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.QuotationRequest{}, translate(err)
	}
	return q, nil
}

func (r *QuotationRequestRepository) GetByID(ctx context.Context, id string) (entities.QuotationRequest, error) {
	var m requestModel
	ok, err := findOne(r.db.WithContext(ctx), &m, "id = ?", id)
	if err != nil || !ok {
		return entities.QuotationRequest{}, err
	}
	return m.entity(), nil
}

func (r *QuotationRequestRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.QuotationRequest, error) {
	return r.list(r.db.WithContext(ctx).Where("customer_id = ?", customerID), 0)
}

func (r *QuotationRequestRepository) ListByStatuses(ctx context.Context, statuses []entities.RequestStatus) ([]entities.QuotationRequest, error) {
	return r.list(r.db.WithContext(ctx).Where("status IN ?", statusStrings(statuses)), 0)
}

func (r *QuotationRequestRepository) ListAll(ctx context.Context, limit int) ([]entities.QuotationRequest, error) {
	return r.list(r.db.WithContext(ctx), limit)
}

func (r *QuotationRequestRepository) list(q *gorm.DB, limit int) ([]entities.QuotationRequest, error) {
	if limit > 0 {
		q = q.Limit(limit)
	}
	var ms []requestModel
	if err := q.Order("created_at DESC, id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return mapModels(ms, requestModel.entity), nil
}

func (r *QuotationRequestRepository) Count(ctx context.Context) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&requestModel{}).Count(&n).Error
	return int(n), err
}

func (r *QuotationRequestRepository) UpdateStatus(ctx context.Context, id string, from []entities.RequestStatus, to entities.RequestStatus) (entities.QuotationRequest, error) {
	var out entities.QuotationRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, ok, err := lockRequest(tx, id)
		if err != nil || !ok {
			return err
		}
		if !containsStatus(from, entities.RequestStatus(m.Status)) {
			return interfaces.ErrConditionFailed
		}
		m.Status = string(to)
		m.UpdatedAt = time.Now().UTC()
		if err := tx.Model(&requestModel{}).Where("id = ?", id).
			Updates(map[string]any{"status": m.Status, "updated_at": m.UpdatedAt}).Error; err != nil {
			return err
		}
		out = m.entity()
		return nil
	})
	if err != nil {
		return entities.QuotationRequest{}, translate(err)
	}
	return out, nil
}
