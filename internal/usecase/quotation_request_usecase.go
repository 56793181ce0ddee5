package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"solar_marketplace/internal/domain/comparison"
	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/domain/lifecycle"
	"solar_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateRequestInput struct {
	Address     string
	DeviceCount int
	MonthlyBill float64
	Notes       string
}

// QuotationView is a quotation as the requesting customer sees it.
type QuotationView struct {
	Quotation   entities.VendorQuotation
	CompanyName string
}

type RequestDetail struct {
	Request    entities.QuotationRequest
	Quotations []QuotationView
}

type ComparisonView struct {
	Request entities.QuotationRequest
	Result  comparison.Result
	// CompanyNames maps vendor id to company name.
	CompanyNames map[string]string
}

// OpenRequestView is an open request on a vendor's board.
type OpenRequestView struct {
	Request       entities.QuotationRequest
	AlreadyQuoted bool
}

type VendorRequestDetail struct {
	Request entities.QuotationRequest
	// Quotation is the vendor's own quotation, nil when it has not quoted yet.
	Quotation *entities.VendorQuotation
}

type IQuotationRequestUseCase interface {
	Create(ctx context.Context, customerID string, in CreateRequestInput) (entities.QuotationRequest, error)
	ListForCustomer(ctx context.Context, customerID string) ([]entities.QuotationRequest, error)
	GetForCustomer(ctx context.Context, customerID, requestID string) (RequestDetail, error)
	Compare(ctx context.Context, customerID, requestID string) (ComparisonView, error)
	Close(ctx context.Context, actor entities.User, requestID string) (entities.QuotationRequest, error)

	ListAccepting(ctx context.Context, vendorID string) ([]OpenRequestView, error)
	GetForVendor(ctx context.Context, vendorID, requestID string) (VendorRequestDetail, error)
}

type QuotationRequestUseCase struct {
	requests   interfaces.IQuotationRequestRepository
	quotations interfaces.IVendorQuotationRepository
	users      interfaces.IUserRepository
	notifier   INotifier
	recorder   ActivityRecorder
	log        *zap.SugaredLogger
	now        func() time.Time
}

var _ IQuotationRequestUseCase = (*QuotationRequestUseCase)(nil)

func NewQuotationRequestUseCase(
	requests interfaces.IQuotationRequestRepository,
	quotations interfaces.IVendorQuotationRepository,
	users interfaces.IUserRepository,
	notifier INotifier,
	recorder ActivityRecorder,
	log *zap.SugaredLogger,
) *QuotationRequestUseCase {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &QuotationRequestUseCase{
		requests:   requests,
		quotations: quotations,
		users:      users,
		notifier:   notifier,
		recorder:   recorder,
		log:        log.With("component", "usecase.request"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuotationRequestUseCase) Create(ctx context.Context, customerID string, in CreateRequestInput) (entities.QuotationRequest, error) {
	address := strings.TrimSpace(in.Address)
	if address == "" {
		return entities.QuotationRequest{}, invalid("address", "address is required")
	}
	if in.DeviceCount <= 0 {
		return entities.QuotationRequest{}, invalid("device_count", "device count must be greater than zero")
	}
	if in.MonthlyBill <= 0 {
		return entities.QuotationRequest{}, invalid("monthly_bill", "monthly bill must be greater than zero")
	}

	now := u.now()
	r := entities.QuotationRequest{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		Address:     address,
		DeviceCount: in.DeviceCount,
		MonthlyBill: in.MonthlyBill,
		Notes:       strings.TrimSpace(in.Notes),
		Status:      entities.RequestStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.requests.Create(ctx, r)
	if errors.Is(err, interfaces.ErrParentNotFound) {
		return entities.QuotationRequest{}, ErrUserNotFound
	}
	if err != nil {
		u.log.Errorw("create request failed", "customer_id", customerID, "error", err)
		return entities.QuotationRequest{}, err
	}

	u.recorder.RequestCreated()
	u.log.Infow("request created", "request_id", created.ID, "customer_id", customerID)
	if u.notifier != nil {
		u.notifier.RequestCreated(ctx, created)
	}
	return created, nil
}

func (u *QuotationRequestUseCase) ListForCustomer(ctx context.Context, customerID string) ([]entities.QuotationRequest, error) {
	return u.requests.ListByCustomerID(ctx, customerID)
}

// GetForCustomer loads an owned request with its quotations. Quotations still
// in submitted are marked viewed on the way out unless the request is closed.
func (u *QuotationRequestUseCase) GetForCustomer(ctx context.Context, customerID, requestID string) (RequestDetail, error) {
	r, err := u.ownedRequest(ctx, customerID, requestID)
	if err != nil {
		return RequestDetail{}, err
	}
	qs, err := u.quotations.ListByRequestID(ctx, r.ID)
	if err != nil {
		return RequestDetail{}, err
	}

	names := u.companyNames(ctx, qs)
	views := make([]QuotationView, 0, len(qs))
	for _, q := range qs {
		if r.Status != entities.RequestStatusClosed && q.Status == entities.QuotationStatusSubmitted {
			q = u.markViewed(ctx, q)
		}
		views = append(views, QuotationView{Quotation: q, CompanyName: names[q.VendorID]})
	}
	return RequestDetail{Request: r, Quotations: views}, nil
}

func (u *QuotationRequestUseCase) markViewed(ctx context.Context, q entities.VendorQuotation) entities.VendorQuotation {
	updated, err := u.quotations.UpdateStatus(ctx, q.ID, lifecycle.SourcesForQuotation(entities.QuotationStatusViewed), entities.QuotationStatusViewed)
	if err != nil || updated.ID == "" {
		u.log.Debugw("mark viewed skipped", "quotation_id", q.ID, "error", err)
		return q
	}
	u.recorder.QuotationTransition(string(entities.QuotationStatusViewed))
	return updated
}

func (u *QuotationRequestUseCase) Compare(ctx context.Context, customerID, requestID string) (ComparisonView, error) {
	r, err := u.ownedRequest(ctx, customerID, requestID)
	if err != nil {
		return ComparisonView{}, err
	}
	qs, err := u.quotations.ListByRequestID(ctx, r.ID)
	if err != nil {
		return ComparisonView{}, err
	}
	res, err := comparison.Rank(qs)
	if errors.Is(err, comparison.ErrNoQuotations) {
		return ComparisonView{}, ErrNoQuotations
	}
	if err != nil {
		return ComparisonView{}, err
	}
	return ComparisonView{Request: r, Result: res, CompanyNames: u.companyNames(ctx, qs)}, nil
}

// Close is the customer or admin driven terminal transition. Customers may
// only close their own requests; admins may close any.
func (u *QuotationRequestUseCase) Close(ctx context.Context, actor entities.User, requestID string) (entities.QuotationRequest, error) {
	r, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.QuotationRequest{}, err
	}
	if r.ID == "" || (actor.Role != entities.RoleAdmin && r.CustomerID != actor.ID) {
		return entities.QuotationRequest{}, ErrRequestNotFound
	}
	if err := lifecycle.CheckRequest(r.Status, entities.RequestStatusClosed); err != nil {
		return entities.QuotationRequest{}, ErrRequestClosed
	}

	closed, err := u.requests.UpdateStatus(ctx, r.ID, lifecycle.SourcesForRequest(entities.RequestStatusClosed), entities.RequestStatusClosed)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.QuotationRequest{}, ErrRequestClosed
	}
	if err != nil {
		u.log.Errorw("close request failed", "request_id", r.ID, "error", err)
		return entities.QuotationRequest{}, err
	}
	if closed.ID == "" {
		return entities.QuotationRequest{}, ErrRequestNotFound
	}
	u.log.Infow("request closed", "request_id", r.ID, "actor_id", actor.ID, "actor_role", actor.Role)
	return closed, nil
}

func (u *QuotationRequestUseCase) ListAccepting(ctx context.Context, vendorID string) ([]OpenRequestView, error) {
	rs, err := u.requests.ListByStatuses(ctx, []entities.RequestStatus{entities.RequestStatusOpen, entities.RequestStatusInProgress})
	if err != nil {
		return nil, err
	}
	own, err := u.quotations.ListByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	quoted := make(map[string]bool, len(own))
	for _, q := range own {
		quoted[q.RequestID] = true
	}

	out := make([]OpenRequestView, 0, len(rs))
	for _, r := range rs {
		out = append(out, OpenRequestView{Request: r, AlreadyQuoted: quoted[r.ID]})
	}
	return out, nil
}

// GetForVendor shows a request to a vendor. Closed requests stay visible only
// to vendors that quoted on them.
func (u *QuotationRequestUseCase) GetForVendor(ctx context.Context, vendorID, requestID string) (VendorRequestDetail, error) {
	r, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return VendorRequestDetail{}, err
	}
	if r.ID == "" {
		return VendorRequestDetail{}, ErrRequestNotFound
	}
	q, err := u.quotations.GetByRequestAndVendor(ctx, r.ID, vendorID)
	if err != nil {
		return VendorRequestDetail{}, err
	}

	detail := VendorRequestDetail{Request: r}
	if q.ID != "" {
		detail.Quotation = &q
	} else if !r.AcceptingQuotations() {
		return VendorRequestDetail{}, ErrRequestNotFound
	}
	return detail, nil
}

func (u *QuotationRequestUseCase) ownedRequest(ctx context.Context, customerID, requestID string) (entities.QuotationRequest, error) {
	r, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.QuotationRequest{}, err
	}
	if r.ID == "" || r.CustomerID != customerID {
		return entities.QuotationRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *QuotationRequestUseCase) companyNames(ctx context.Context, qs []entities.VendorQuotation) map[string]string {
	names := make(map[string]string, len(qs))
	for _, q := range qs {
		if _, seen := names[q.VendorID]; seen {
			continue
		}
		names[q.VendorID] = vendorCompanyName(ctx, u.users, q.VendorID)
	}
	return names
}

// vendorCompanyName is empty when the profile cannot be loaded.
func vendorCompanyName(ctx context.Context, users interfaces.IUserRepository, vendorID string) string {
	p, err := users.GetProfile(ctx, vendorID)
	if err != nil || p.Vendor == nil {
		return ""
	}
	return p.Vendor.CompanyName
}
