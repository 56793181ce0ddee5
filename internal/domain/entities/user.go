package entities

import "time"

// Role is the user type that gates which pages and operations a user can reach.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// VerificationStatus is the admin moderation state of a vendor.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// User is an account. PasswordHash is empty for federated-identity accounts,
// which cannot log in with a password.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}

type CustomerProfile struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Address           string `json:"address"`
	PhoneNumber       string `json:"phone_number"`
	FederatedIdentity bool   `json:"federated_identity"`
	ProfileComplete   bool   `json:"profile_complete"`
}

type VendorProfile struct {
	CompanyName        string             `json:"company_name"`
	OwnerName          string             `json:"owner_name"`
	CompanyAddress     string             `json:"company_address"`
	ContactPhone       string             `json:"contact_phone"`
	Description        string             `json:"description"`
	ServicesOffered    string             `json:"services_offered"`
	ProfileComplete    bool               `json:"profile_complete"`
	VerificationStatus VerificationStatus `json:"verification_status"`
}

type AdminProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Title     string `json:"title"`
}

// Profile is the 1:1 role extension of a User. Exactly one of the pointers
// is set, matching the owning user's role.
type Profile struct {
	UserID   string           `json:"user_id"`
	Customer *CustomerProfile `json:"customer,omitempty"`
	Vendor   *VendorProfile   `json:"vendor,omitempty"`
	Admin    *AdminProfile    `json:"admin,omitempty"`
}

// Role reports which role the populated extension belongs to.
func (p Profile) Role() Role {
	switch {
	case p.Customer != nil:
		return RoleCustomer
	case p.Vendor != nil:
		return RoleVendor
	case p.Admin != nil:
		return RoleAdmin
	}
	return ""
}

// UserWithProfile is the read model used by admin listings and /auth/me.
type UserWithProfile struct {
	User    User    `json:"user"`
	Profile Profile `json:"profile"`
}
