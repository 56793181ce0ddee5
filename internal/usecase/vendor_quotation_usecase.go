package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/domain/lifecycle"
	"solar_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubmitQuotationInput struct {
	RequestID             string
	Price                 float64
	InstallationTimeframe string
	WarrantyPeriod        string
	DocumentURL           string
	Notes                 string
}

// VendorQuotationView is a vendor's own quotation with the request it answers.
type VendorQuotationView struct {
	Quotation entities.VendorQuotation
	Request   entities.QuotationRequest
}

type IVendorQuotationUseCase interface {
	Submit(ctx context.Context, vendorID string, in SubmitQuotationInput) (entities.VendorQuotation, error)
	ListForVendor(ctx context.Context, vendorID string) ([]VendorQuotationView, error)
	Accept(ctx context.Context, customerID, quotationID string) (entities.VendorQuotation, error)
	Reject(ctx context.Context, customerID, quotationID string) (entities.VendorQuotation, error)
}

type VendorQuotationUseCase struct {
	quotations interfaces.IVendorQuotationRepository
	requests   interfaces.IQuotationRequestRepository
	users      interfaces.IUserRepository
	notifier   INotifier
	recorder   ActivityRecorder
	log        *zap.SugaredLogger
	now        func() time.Time
}

var _ IVendorQuotationUseCase = (*VendorQuotationUseCase)(nil)

func NewVendorQuotationUseCase(
	quotations interfaces.IVendorQuotationRepository,
	requests interfaces.IQuotationRequestRepository,
	users interfaces.IUserRepository,
	notifier INotifier,
	recorder ActivityRecorder,
	log *zap.SugaredLogger,
) *VendorQuotationUseCase {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &VendorQuotationUseCase{
		quotations: quotations,
		requests:   requests,
		users:      users,
		notifier:   notifier,
		recorder:   recorder,
		log:        log.With("component", "usecase.quotation"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Submit inserts the vendor's single quotation for a request. The lookup for
// an existing quotation is only an early exit; the repository's uniqueness
// guard decides concurrent submissions.
func (u *VendorQuotationUseCase) Submit(ctx context.Context, vendorID string, in SubmitQuotationInput) (entities.VendorQuotation, error) {
	requestID := strings.TrimSpace(in.RequestID)
	if requestID == "" {
		return entities.VendorQuotation{}, invalid("request_id", "request id is required")
	}
	if in.Price <= 0 {
		return entities.VendorQuotation{}, invalid("price", "price must be greater than zero")
	}
	timeframe := strings.TrimSpace(in.InstallationTimeframe)
	if timeframe == "" {
		return entities.VendorQuotation{}, invalid("installation_timeframe", "installation timeframe is required")
	}
	warranty := strings.TrimSpace(in.WarrantyPeriod)
	if warranty == "" {
		return entities.VendorQuotation{}, invalid("warranty_period", "warranty period is required")
	}

	r, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.VendorQuotation{}, err
	}
	if r.ID == "" {
		return entities.VendorQuotation{}, ErrRequestNotFound
	}
	if !r.AcceptingQuotations() {
		return entities.VendorQuotation{}, ErrRequestClosed
	}
	existing, err := u.quotations.GetByRequestAndVendor(ctx, r.ID, vendorID)
	if err != nil {
		return entities.VendorQuotation{}, err
	}
	if existing.ID != "" {
		return entities.VendorQuotation{}, ErrQuotationAlreadyExists
	}

	now := u.now()
	q := entities.VendorQuotation{
		ID:                    uuid.NewString(),
		RequestID:             r.ID,
		VendorID:              vendorID,
		Price:                 in.Price,
		InstallationTimeframe: timeframe,
		WarrantyPeriod:        warranty,
		DocumentURL:           strings.TrimSpace(in.DocumentURL),
		Notes:                 strings.TrimSpace(in.Notes),
		Status:                entities.QuotationStatusSubmitted,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	created, err := u.quotations.Create(ctx, q)
	switch {
	case errors.Is(err, interfaces.ErrDuplicate):
		return entities.VendorQuotation{}, ErrQuotationAlreadyExists
	case errors.Is(err, interfaces.ErrParentNotFound):
		return entities.VendorQuotation{}, ErrRequestNotFound
	case errors.Is(err, interfaces.ErrConditionFailed):
		return entities.VendorQuotation{}, ErrRequestClosed
	case err != nil:
		u.log.Errorw("submit quotation failed", "request_id", r.ID, "vendor_id", vendorID, "error", err)
		return entities.VendorQuotation{}, err
	}

	u.recorder.QuotationSubmitted()
	u.log.Infow("quotation submitted", "quotation_id", created.ID, "request_id", r.ID, "vendor_id", vendorID)
	if u.notifier != nil {
		u.notifier.QuotationSubmitted(ctx, r, created, vendorCompanyName(ctx, u.users, vendorID))
	}
	return created, nil
}

func (u *VendorQuotationUseCase) ListForVendor(ctx context.Context, vendorID string) ([]VendorQuotationView, error) {
	qs, err := u.quotations.ListByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	requests := make(map[string]entities.QuotationRequest)
	out := make([]VendorQuotationView, 0, len(qs))
	for _, q := range qs {
		r, ok := requests[q.RequestID]
		if !ok {
			r, err = u.requests.GetByID(ctx, q.RequestID)
			if err != nil {
				return nil, err
			}
			requests[q.RequestID] = r
		}
		out = append(out, VendorQuotationView{Quotation: q, Request: r})
	}
	return out, nil
}

func (u *VendorQuotationUseCase) Accept(ctx context.Context, customerID, quotationID string) (entities.VendorQuotation, error) {
	return u.decide(ctx, customerID, quotationID, entities.QuotationStatusAccepted)
}

func (u *VendorQuotationUseCase) Reject(ctx context.Context, customerID, quotationID string) (entities.VendorQuotation, error) {
	return u.decide(ctx, customerID, quotationID, entities.QuotationStatusRejected)
}

// decide applies a customer decision. Accepting closes the request, which
// freezes every sibling quotation.
func (u *VendorQuotationUseCase) decide(ctx context.Context, customerID, quotationID string, to entities.QuotationStatus) (entities.VendorQuotation, error) {
	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return entities.VendorQuotation{}, err
	}
	if q.ID == "" {
		return entities.VendorQuotation{}, ErrQuotationNotFound
	}
	r, err := u.requests.GetByID(ctx, q.RequestID)
	if err != nil {
		return entities.VendorQuotation{}, err
	}
	if r.ID == "" || r.CustomerID != customerID {
		return entities.VendorQuotation{}, ErrQuotationNotFound
	}
	if err := checkDecision(r.Status, q.Status, to); err != nil {
		return entities.VendorQuotation{}, err
	}

	updated, err := u.quotations.UpdateStatus(ctx, q.ID, lifecycle.SourcesForQuotation(to), to)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		// Lost a race; report against the current state.
		current, rerr := u.requests.GetByID(ctx, q.RequestID)
		if rerr == nil && current.Status == entities.RequestStatusClosed {
			return entities.VendorQuotation{}, ErrRequestClosed
		}
		return entities.VendorQuotation{}, ErrInvalidTransition
	}
	if err != nil {
		u.log.Errorw("quotation transition failed", "quotation_id", q.ID, "to", to, "error", err)
		return entities.VendorQuotation{}, err
	}
	if updated.ID == "" {
		return entities.VendorQuotation{}, ErrQuotationNotFound
	}

	u.recorder.QuotationTransition(string(to))
	u.log.Infow("quotation decided", "quotation_id", q.ID, "request_id", r.ID, "status", to)
	if lifecycle.ClosesRequest(to) {
		r.Status = entities.RequestStatusClosed
	}
	if u.notifier != nil {
		u.notifier.QuotationDecided(ctx, r, updated)
	}
	return updated, nil
}

func checkDecision(parent entities.RequestStatus, from, to entities.QuotationStatus) error {
	err := lifecycle.CheckQuotation(parent, from, to)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, lifecycle.ErrRequestClosed):
		return ErrRequestClosed
	default:
		return ErrInvalidTransition
	}
}
