package request

import (
	"testing"

	"solar_marketplace/internal/domain/entities"
)

func TestRegisterRequest_ToInput(t *testing.T) {
	r := RegisterRequest{
		Email:       "a@b.com",
		Password:    "secretpass",
		UserType:    " Vendor ",
		FirstName:   "ignored",
		CompanyName: "Sun Co",
		OwnerName:   "Bo",
	}
	in := r.ToInput()
	if in.Role != entities.RoleVendor {
		t.Fatalf("expected vendor role, got %q", in.Role)
	}
	if in.Vendor.CompanyName != "Sun Co" || in.Vendor.OwnerName != "Bo" {
		t.Fatalf("unexpected vendor profile: %+v", in.Vendor)
	}
	if in.Customer.FirstName != "" {
		t.Fatalf("customer fields must not leak into a vendor registration: %+v", in.Customer)
	}

	c := RegisterRequest{UserType: "customer", FirstName: "Ana", LastName: "Lima"}.ToInput()
	if c.Role != entities.RoleCustomer || c.Customer.FirstName != "Ana" {
		t.Fatalf("unexpected customer input: %+v", c)
	}

	unknown := RegisterRequest{UserType: "admin", FirstName: "x"}.ToInput()
	if unknown.Customer.FirstName != "" || unknown.Vendor.CompanyName != "" {
		t.Fatalf("no profile expected for %q: %+v", unknown.Role, unknown)
	}
}

func TestSubmitQuotationRequest_ToInput(t *testing.T) {
	in := SubmitQuotationRequest{RequestID: " r-1 ", Price: 100, WarrantyPeriod: "10 years"}.ToInput()
	if in.RequestID != "r-1" || in.Price != 100 || in.WarrantyPeriod != "10 years" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestVendorVerificationRequest_Status(t *testing.T) {
	if got := (VendorVerificationRequest{Status: " Verified"}).VerificationStatus(); got != entities.VerificationVerified {
		t.Fatalf("expected verified, got %q", got)
	}
}
