package memory

import (
	"context"
	"slices"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"
)

type QuotationRequestRepository struct {
	s *Store
}

var _ interfaces.IQuotationRequestRepository = (*QuotationRequestRepository)(nil)

func (r *QuotationRequestRepository) Create(_ context.Context, req entities.QuotationRequest) (entities.QuotationRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, taken := r.s.requests[req.ID]; taken {
		return entities.QuotationRequest{}, interfaces.ErrDuplicate
	}
	if _, ok := r.s.users[req.CustomerID]; !ok {
		return entities.QuotationRequest{}, interfaces.ErrParentNotFound
	}
	r.s.requests[req.ID] = req
	return req, nil
}

func (r *QuotationRequestRepository) GetByID(_ context.Context, id string) (entities.QuotationRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.requests[id], nil
}

func (r *QuotationRequestRepository) ListByCustomerID(_ context.Context, customerID string) ([]entities.QuotationRequest, error) {
	return r.filter(0, func(req entities.QuotationRequest) bool { return req.CustomerID == customerID }), nil
}

func (r *QuotationRequestRepository) ListByStatuses(_ context.Context, statuses []entities.RequestStatus) ([]entities.QuotationRequest, error) {
	return r.filter(0, func(req entities.QuotationRequest) bool { return slices.Contains(statuses, req.Status) }), nil
}

func (r *QuotationRequestRepository) ListAll(_ context.Context, limit int) ([]entities.QuotationRequest, error) {
	return r.filter(limit, func(entities.QuotationRequest) bool { return true }), nil
}

func (r *QuotationRequestRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.requests), nil
}

func (r *QuotationRequestRepository) UpdateStatus(_ context.Context, id string, from []entities.RequestStatus, to entities.RequestStatus) (entities.QuotationRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.requests[id]
	if !ok {
		return entities.QuotationRequest{}, nil
	}
	if !slices.Contains(from, req.Status) {
		return entities.QuotationRequest{}, interfaces.ErrConditionFailed
	}
	req.Status = to
	req.UpdatedAt = time.Now().UTC()
	r.s.requests[id] = req
	return req, nil
}

func (r *QuotationRequestRepository) filter(limit int, keep func(entities.QuotationRequest) bool) []entities.QuotationRequest {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.QuotationRequest, 0)
	for _, req := range r.s.requests {
		if keep(req) {
			out = append(out, req)
		}
	}
	sortRequestsNewestFirst(out)
	return limitSlice(out, limit)
}
