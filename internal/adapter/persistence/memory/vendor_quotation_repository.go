package memory

import (
	"context"
	"slices"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/domain/lifecycle"
	"solar_marketplace/internal/usecase/interfaces"
)

type VendorQuotationRepository struct {
	s *Store
}

var _ interfaces.IVendorQuotationRepository = (*VendorQuotationRepository)(nil)

func (r *VendorQuotationRepository) Create(_ context.Context, q entities.VendorQuotation) (entities.VendorQuotation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	parent, ok := r.s.requests[q.RequestID]
	if !ok {
		return entities.VendorQuotation{}, interfaces.ErrParentNotFound
	}
	if _, ok := r.s.users[q.VendorID]; !ok {
		return entities.VendorQuotation{}, interfaces.ErrParentNotFound
	}
	next, changed, err := lifecycle.PromoteOnQuotation(parent.Status)
	if err != nil {
		return entities.VendorQuotation{}, interfaces.ErrConditionFailed
	}
	key := pairKey(q.RequestID, q.VendorID)
	if _, taken := r.s.pairs[key]; taken {
		return entities.VendorQuotation{}, interfaces.ErrDuplicate
	}
	if _, taken := r.s.quotations[q.ID]; taken {
		return entities.VendorQuotation{}, interfaces.ErrDuplicate
	}

	r.s.quotations[q.ID] = q
	r.s.pairs[key] = q.ID
	if changed {
		parent.Status = next
		parent.UpdatedAt = q.CreatedAt
		r.s.requests[parent.ID] = parent
	}
	return q, nil
}

func (r *VendorQuotationRepository) GetByID(_ context.Context, id string) (entities.VendorQuotation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.quotations[id], nil
}

func (r *VendorQuotationRepository) GetByRequestAndVendor(_ context.Context, requestID, vendorID string) (entities.VendorQuotation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.pairs[pairKey(requestID, vendorID)]
	if !ok {
		return entities.VendorQuotation{}, nil
	}
	return r.s.quotations[id], nil
}

func (r *VendorQuotationRepository) ListByRequestID(_ context.Context, requestID string) ([]entities.VendorQuotation, error) {
	return r.filter(0, func(q entities.VendorQuotation) bool { return q.RequestID == requestID }), nil
}

func (r *VendorQuotationRepository) ListByVendorID(_ context.Context, vendorID string) ([]entities.VendorQuotation, error) {
	return r.filter(0, func(q entities.VendorQuotation) bool { return q.VendorID == vendorID }), nil
}

func (r *VendorQuotationRepository) ListAll(_ context.Context, limit int) ([]entities.VendorQuotation, error) {
	return r.filter(limit, func(entities.VendorQuotation) bool { return true }), nil
}

func (r *VendorQuotationRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.quotations), nil
}

func (r *VendorQuotationRepository) UpdateStatus(_ context.Context, id string, from []entities.QuotationStatus, to entities.QuotationStatus) (entities.VendorQuotation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	q, ok := r.s.quotations[id]
	if !ok {
		return entities.VendorQuotation{}, nil
	}
	parent, ok := r.s.requests[q.RequestID]
	if !ok {
		return entities.VendorQuotation{}, interfaces.ErrParentNotFound
	}
	if parent.Status == entities.RequestStatusClosed || !slices.Contains(from, q.Status) {
		return entities.VendorQuotation{}, interfaces.ErrConditionFailed
	}

	now := time.Now().UTC()
	q.Status = to
	q.UpdatedAt = now
	r.s.quotations[id] = q
	if lifecycle.ClosesRequest(to) {
		parent.Status = entities.RequestStatusClosed
		parent.UpdatedAt = now
		r.s.requests[parent.ID] = parent
	}
	return q, nil
}

func (r *VendorQuotationRepository) filter(limit int, keep func(entities.VendorQuotation) bool) []entities.VendorQuotation {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.VendorQuotation, 0)
	for _, q := range r.s.quotations {
		if keep(q) {
			out = append(out, q)
		}
	}
	sortQuotationsNewestFirst(out)
	return limitSlice(out, limit)
}
