package usecase

import (
	"context"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	dashboardRecentLimit = 5
	DefaultListLimit     = 100
)

type Dashboard struct {
	Customers        int
	Vendors          int
	Requests         int
	Quotations       int
	RecentRequests   []entities.QuotationRequest
	RecentQuotations []entities.VendorQuotation
}

type IAdminUseCase interface {
	Dashboard(ctx context.Context) (Dashboard, error)
	ListCustomers(ctx context.Context) ([]entities.UserWithProfile, error)
	ListVendors(ctx context.Context) ([]entities.UserWithProfile, error)
	SetVendorVerification(ctx context.Context, vendorID string, status entities.VerificationStatus) (entities.Profile, error)
	SetUserActive(ctx context.Context, actor entities.User, userID string, active bool) (entities.User, error)
	ListRequests(ctx context.Context, limit int) ([]entities.QuotationRequest, error)
	ListQuotations(ctx context.Context, limit int) ([]entities.VendorQuotation, error)
}

type AdminUseCase struct {
	users      interfaces.IUserRepository
	requests   interfaces.IQuotationRequestRepository
	quotations interfaces.IVendorQuotationRepository
	log        *zap.SugaredLogger
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(users interfaces.IUserRepository, requests interfaces.IQuotationRequestRepository, quotations interfaces.IVendorQuotationRepository, log *zap.SugaredLogger) *AdminUseCase {
	return &AdminUseCase{
		users:      users,
		requests:   requests,
		quotations: quotations,
		log:        log.With("component", "usecase.admin"),
	}
}

func (u *AdminUseCase) Dashboard(ctx context.Context) (Dashboard, error) {
	var d Dashboard
	var err error
	if d.Customers, err = u.users.CountByRole(ctx, entities.RoleCustomer); err != nil {
		return Dashboard{}, err
	}
	if d.Vendors, err = u.users.CountByRole(ctx, entities.RoleVendor); err != nil {
		return Dashboard{}, err
	}
	if d.Requests, err = u.requests.Count(ctx); err != nil {
		return Dashboard{}, err
	}
	if d.Quotations, err = u.quotations.Count(ctx); err != nil {
		return Dashboard{}, err
	}
	if d.RecentRequests, err = u.requests.ListAll(ctx, dashboardRecentLimit); err != nil {
		return Dashboard{}, err
	}
	if d.RecentQuotations, err = u.quotations.ListAll(ctx, dashboardRecentLimit); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}

func (u *AdminUseCase) ListCustomers(ctx context.Context) ([]entities.UserWithProfile, error) {
	return u.listWithProfiles(ctx, entities.RoleCustomer)
}

func (u *AdminUseCase) ListVendors(ctx context.Context) ([]entities.UserWithProfile, error) {
	return u.listWithProfiles(ctx, entities.RoleVendor)
}

func (u *AdminUseCase) listWithProfiles(ctx context.Context, role entities.Role) ([]entities.UserWithProfile, error) {
	users, err := u.users.ListByRole(ctx, role, false)
	if err != nil {
		return nil, err
	}
	out := make([]entities.UserWithProfile, 0, len(users))
	for _, usr := range users {
		p, err := u.users.GetProfile(ctx, usr.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.UserWithProfile{User: usr, Profile: p})
	}
	return out, nil
}

func (u *AdminUseCase) SetVendorVerification(ctx context.Context, vendorID string, status entities.VerificationStatus) (entities.Profile, error) {
	if !status.Valid() {
		return entities.Profile{}, invalid("verification_status", "verification status must be pending, verified or rejected")
	}
	vendor, err := u.users.GetByID(ctx, vendorID)
	if err != nil {
		return entities.Profile{}, err
	}
	if vendor.ID == "" || vendor.Role != entities.RoleVendor {
		return entities.Profile{}, ErrUserNotFound
	}
	p, err := u.users.UpdateVendorVerification(ctx, vendorID, status)
	if err != nil {
		u.log.Errorw("vendor verification failed", "vendor_id", vendorID, "error", err)
		return entities.Profile{}, err
	}
	if p.UserID == "" {
		return entities.Profile{}, ErrUserNotFound
	}
	u.log.Infow("vendor verification updated", "vendor_id", vendorID, "status", status)
	return p, nil
}

func (u *AdminUseCase) SetUserActive(ctx context.Context, actor entities.User, userID string, active bool) (entities.User, error) {
	if actor.ID == userID && !active {
		return entities.User{}, ErrCannotDeactivateSelf
	}
	updated, err := u.users.SetActive(ctx, userID, active)
	if err != nil {
		u.log.Errorw("set user active failed", "user_id", userID, "error", err)
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	u.log.Infow("user active flag updated", "user_id", userID, "active", active, "actor_id", actor.ID)
	return updated, nil
}

func (u *AdminUseCase) ListRequests(ctx context.Context, limit int) ([]entities.QuotationRequest, error) {
	return u.requests.ListAll(ctx, normalizeLimit(limit))
}

func (u *AdminUseCase) ListQuotations(ctx context.Context, limit int) ([]entities.VendorQuotation, error) {
	return u.quotations.ListAll(ctx, normalizeLimit(limit))
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > DefaultListLimit {
		return DefaultListLimit
	}
	return limit
}
