package interfaces

import (
	"context"

	"solar_marketplace/internal/domain/entities"
)

// IQuotationRequestRepository abstracts persistence for customer requests.
// Listings are newest first.
//
// UpdateStatus only applies when the stored status is one of from; otherwise
// it returns ErrConditionFailed. An unknown id returns a zero request.

type IQuotationRequestRepository interface {
	Create(ctx context.Context, r entities.QuotationRequest) (entities.QuotationRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuotationRequest, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.QuotationRequest, error)
	ListByStatuses(ctx context.Context, statuses []entities.RequestStatus) ([]entities.QuotationRequest, error)
	ListAll(ctx context.Context, limit int) ([]entities.QuotationRequest, error)
	Count(ctx context.Context) (int, error)
	UpdateStatus(ctx context.Context, id string, from []entities.RequestStatus, to entities.RequestStatus) (entities.QuotationRequest, error)
}
