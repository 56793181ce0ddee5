package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"solar_marketplace/internal/adapter/persistence/memory"
	"solar_marketplace/internal/domain/entities"

	"go.uber.org/zap"
)

const testPassword = "correct-horse"

func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

type countingRecorder struct {
	mu          sync.Mutex
	requests    int
	submitted   int
	transitions []string
	failures    int
}

func (r *countingRecorder) RequestCreated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests++
}

func (r *countingRecorder) QuotationSubmitted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitted++
}

func (r *countingRecorder) QuotationTransition(to string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, to)
}

func (r *countingRecorder) NotificationFailed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

// marketplace wires every use case over one in-memory store.
type marketplace struct {
	store         *memory.Store
	recorder      *countingRecorder
	auth          *AuthUseCase
	requests      *QuotationRequestUseCase
	quotations    *VendorQuotationUseCase
	notifications *NotificationUseCase
	admin         *AdminUseCase
}

func newMarketplace(t *testing.T) *marketplace {
	t.Helper()
	s := memory.NewStore()
	rec := &countingRecorder{}
	n := NewNotifier(s.Users(), s.Notifications(), nil, rec, nopLogger())
	return &marketplace{
		store:         s,
		recorder:      rec,
		auth:          NewAuthUseCase(s.Users(), s.Sessions(), time.Hour, nopLogger()),
		requests:      NewQuotationRequestUseCase(s.Requests(), s.Quotations(), s.Users(), n, rec, nopLogger()),
		quotations:    NewVendorQuotationUseCase(s.Quotations(), s.Requests(), s.Users(), n, rec, nopLogger()),
		notifications: NewNotificationUseCase(s.Notifications(), nopLogger()),
		admin:         NewAdminUseCase(s.Users(), s.Requests(), s.Quotations(), nopLogger()),
	}
}

func (m *marketplace) customer(t *testing.T, email string) entities.User {
	t.Helper()
	u, err := m.auth.Register(context.Background(), RegisterInput{
		Email:    email,
		Password: testPassword,
		Role:     entities.RoleCustomer,
		Customer: entities.CustomerProfile{FirstName: "Ana", LastName: "Silva"},
	})
	if err != nil {
		t.Fatalf("register customer: %v", err)
	}
	return u
}

func (m *marketplace) vendor(t *testing.T, email, company string) entities.User {
	t.Helper()
	u, err := m.auth.Register(context.Background(), RegisterInput{
		Email:    email,
		Password: testPassword,
		Role:     entities.RoleVendor,
		Vendor: entities.VendorProfile{
			CompanyName:    company,
			OwnerName:      "Owner",
			CompanyAddress: "2 Industrial Rd",
			ContactPhone:   "555-0100",
		},
	})
	if err != nil {
		t.Fatalf("register vendor: %v", err)
	}
	return u
}

func (m *marketplace) request(t *testing.T, customerID string) entities.QuotationRequest {
	t.Helper()
	r, err := m.requests.Create(context.Background(), customerID, CreateRequestInput{Address: "1 Main St", DeviceCount: 4, MonthlyBill: 150})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	return r
}

func (m *marketplace) quote(t *testing.T, vendorID, requestID string, price float64, warranty string) entities.VendorQuotation {
	t.Helper()
	q, err := m.quotations.Submit(context.Background(), vendorID, SubmitQuotationInput{
		RequestID:             requestID,
		Price:                 price,
		InstallationTimeframe: "3 weeks",
		WarrantyPeriod:        warranty,
	})
	if err != nil {
		t.Fatalf("submit quotation: %v", err)
	}
	return q
}
