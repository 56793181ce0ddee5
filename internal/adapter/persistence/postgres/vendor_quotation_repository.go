package postgres

import (
	"context"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/domain/lifecycle"
	"solar_marketplace/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VendorQuotationRepository struct {
	db *gorm.DB
}

var _ interfaces.IVendorQuotationRepository = (*VendorQuotationRepository)(nil)

func NewVendorQuotationRepository(db *gorm.DB) *VendorQuotationRepository {
	return &VendorQuotationRepository{db: db}
}

// lockRequest loads a request row FOR UPDATE. Every write that depends on the
// parent status takes this lock first.
func lockRequest(tx *gorm.DB, id string) (requestModel, bool, error) {
	var m requestModel
	ok, err := findOne(tx.Clauses(clause.Locking{Strength: "UPDATE"}), &m, "id = ?", id)
	return m, ok, err
}

func (r *VendorQuotationRepository) Create(ctx context.Context, q entities.VendorQuotation) (entities.VendorQuotation, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		parent, ok, err := lockRequest(tx, q.RequestID)
		if err != nil {
			return err
		}
		if !ok {
			return interfaces.ErrParentNotFound
		}
		next, changed, err := lifecycle.PromoteOnQuotation(entities.RequestStatus(parent.Status))
		if err != nil {
			return interfaces.ErrConditionFailed
		}
		m := toQuotationModel(q)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return tx.Model(&requestModel{}).Where("id = ?", parent.ID).
			Updates(map[string]any{"status": string(next), "updated_at": q.CreatedAt}).Error
	})
	if err != nil {
		return entities.VendorQuotation{}, translate(err)
	}
	return q, nil
}

func (r *VendorQuotationRepository) GetByID(ctx context.Context, id string) (entities.VendorQuotation, error) {
	return r.getOne(r.db.WithContext(ctx), "id = ?", id)
}

func (r *VendorQuotationRepository) GetByRequestAndVendor(ctx context.Context, requestID, vendorID string) (entities.VendorQuotation, error) {
	return r.getOne(r.db.WithContext(ctx), "request_id = ? AND vendor_id = ?", requestID, vendorID)
}

func (r *VendorQuotationRepository) getOne(tx *gorm.DB, query string, args ...any) (entities.VendorQuotation, error) {
	var m quotationModel
	ok, err := findOne(tx, &m, query, args...)
	if err != nil || !ok {
		return entities.VendorQuotation{}, err
	}
	return m.entity(), nil
}

func (r *VendorQuotationRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.VendorQuotation, error) {
	return r.list(r.db.WithContext(ctx).Where("request_id = ?", requestID), 0)
}

func (r *VendorQuotationRepository) ListByVendorID(ctx context.Context, vendorID string) ([]entities.VendorQuotation, error) {
	return r.list(r.db.WithContext(ctx).Where("vendor_id = ?", vendorID), 0)
}

func (r *VendorQuotationRepository) ListAll(ctx context.Context, limit int) ([]entities.VendorQuotation, error) {
	return r.list(r.db.WithContext(ctx), limit)
}

func (r *VendorQuotationRepository) list(q *gorm.DB, limit int) ([]entities.VendorQuotation, error) {
	if limit > 0 {
		q = q.Limit(limit)
	}
	var ms []quotationModel
	if err := q.Order("created_at DESC, id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return mapModels(ms, quotationModel.entity), nil
}

func (r *VendorQuotationRepository) Count(ctx context.Context) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&quotationModel{}).Count(&n).Error
	return int(n), err
}

// UpdateStatus locks the parent request, then the quotation, so concurrent
// decisions on siblings serialize on the request row.
func (r *VendorQuotationRepository) UpdateStatus(ctx context.Context, id string, from []entities.QuotationStatus, to entities.QuotationStatus) (entities.VendorQuotation, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil || current.ID == "" {
		return entities.VendorQuotation{}, err
	}

	var out entities.VendorQuotation
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		parent, ok, err := lockRequest(tx, current.RequestID)
		if err != nil {
			return err
		}
		if !ok || entities.RequestStatus(parent.Status) == entities.RequestStatusClosed {
			return interfaces.ErrConditionFailed
		}
		var m quotationModel
		found, err := findOne(tx.Clauses(clause.Locking{Strength: "UPDATE"}), &m, "id = ?", id)
		if err != nil {
			return err
		}
		if !found || !containsStatus(from, entities.QuotationStatus(m.Status)) {
			return interfaces.ErrConditionFailed
		}

		now := time.Now().UTC()
		if err := tx.Model(&quotationModel{}).Where("id = ?", id).
			Updates(map[string]any{"status": string(to), "updated_at": now}).Error; err != nil {
			return err
		}
		if lifecycle.ClosesRequest(to) {
			if err := tx.Model(&requestModel{}).Where("id = ?", parent.ID).
				Updates(map[string]any{"status": string(entities.RequestStatusClosed), "updated_at": now}).Error; err != nil {
				return err
			}
		}
		m.Status = string(to)
		m.UpdatedAt = now
		out = m.entity()
		return nil
	})
	if err != nil {
		return entities.VendorQuotation{}, translate(err)
	}
	return out, nil
}

func containsStatus[S ~string](set []S, s S) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func statusStrings[S ~string](ss []S) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, string(s))
	}
	return out
}
