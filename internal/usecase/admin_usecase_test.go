package usecase

import (
	"context"
	"errors"
	"testing"

	"solar_marketplace/internal/domain/entities"
)

func TestAdminUseCase_Dashboard(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	c := m.customer(t, "c@example.com")
	v := m.vendor(t, "v@example.com", "Sun")
	for i := 0; i < 7; i++ {
		r := m.request(t, c.ID)
		if i < 2 {
			m.quote(t, v.ID, r.ID, 1000, "10 years")
		}
	}

	d, err := m.admin.Dashboard(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Customers != 1 || d.Vendors != 1 || d.Requests != 7 || d.Quotations != 2 {
		t.Fatalf("unexpected counts: %+v", d)
	}
	if len(d.RecentRequests) != 5 || len(d.RecentQuotations) != 2 {
		t.Fatalf("unexpected recent lists: %d requests, %d quotations", len(d.RecentRequests), len(d.RecentQuotations))
	}
}

func TestAdminUseCase_Users(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	c := m.customer(t, "c@example.com")
	v := m.vendor(t, "v@example.com", "Sun")
	admin, err := m.auth.CreateAdmin(ctx, CreateAdminInput{Email: "admin@example.com", Password: testPassword})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}

	t.Run("lists carry profiles", func(t *testing.T) {
		customers, err := m.admin.ListCustomers(ctx)
		if err != nil || len(customers) != 1 || customers[0].Profile.Customer == nil {
			t.Fatalf("unexpected customers: %+v err=%v", customers, err)
		}
		vendors, err := m.admin.ListVendors(ctx)
		if err != nil || len(vendors) != 1 || vendors[0].Profile.Vendor == nil {
			t.Fatalf("unexpected vendors: %+v err=%v", vendors, err)
		}
	})

	t.Run("vendor verification", func(t *testing.T) {
		p, err := m.admin.SetVendorVerification(ctx, v.ID, entities.VerificationVerified)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Vendor.VerificationStatus != entities.VerificationVerified {
			t.Fatalf("expected verified, got %s", p.Vendor.VerificationStatus)
		}
		if _, err := m.admin.SetVendorVerification(ctx, v.ID, "approved"); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if _, err := m.admin.SetVendorVerification(ctx, c.ID, entities.VerificationVerified); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound for a customer id, got %v", err)
		}
	})

	t.Run("activation", func(t *testing.T) {
		u, err := m.admin.SetUserActive(ctx, admin, c.ID, false)
		if err != nil || u.Active {
			t.Fatalf("expected deactivated user, got %+v err=%v", u, err)
		}
		if _, err := m.admin.SetUserActive(ctx, admin, admin.ID, false); !errors.Is(err, ErrCannotDeactivateSelf) {
			t.Fatalf("expected ErrCannotDeactivateSelf, got %v", err)
		}
		if _, err := m.admin.SetUserActive(ctx, admin, "missing", true); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestNormalizeLimit(t *testing.T) {
	cases := map[int]int{0: DefaultListLimit, -1: DefaultListLimit, 10: 10, DefaultListLimit + 1: DefaultListLimit}
	for in, want := range cases {
		if got := normalizeLimit(in); got != want {
			t.Fatalf("normalizeLimit(%d) = %d, want %d", in, got, want)
		}
	}
}
