package interfaces

import (
	"context"

	"solar_marketplace/internal/domain/entities"
)

// IVendorQuotationRepository abstracts persistence for vendor quotations.
//
// Create is one atomic unit: it fails with ErrParentNotFound when the request
// is missing, ErrConditionFailed when the request is closed and ErrDuplicate
// when the vendor already quoted; otherwise it inserts the quotation and moves
// an open request to in_progress.
//
// UpdateStatus applies only when the stored status is one of from and the
// parent request is not closed (ErrConditionFailed otherwise). Moving to
// accepted closes the parent request in the same transaction.

type IVendorQuotationRepository interface {
	Create(ctx context.Context, q entities.VendorQuotation) (entities.VendorQuotation, error)
	GetByID(ctx context.Context, id string) (entities.VendorQuotation, error)
	GetByRequestAndVendor(ctx context.Context, requestID, vendorID string) (entities.VendorQuotation, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.VendorQuotation, error)
	ListByVendorID(ctx context.Context, vendorID string) ([]entities.VendorQuotation, error)
	ListAll(ctx context.Context, limit int) ([]entities.VendorQuotation, error)
	Count(ctx context.Context) (int, error)
	UpdateStatus(ctx context.Context, id string, from []entities.QuotationStatus, to entities.QuotationStatus) (entities.VendorQuotation, error)
}
