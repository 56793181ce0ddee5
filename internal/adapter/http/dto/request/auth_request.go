package request

import (
	"strings"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase"
)

// RegisterRequest is the self-service sign-up payload. Only the profile
// fields of the chosen user_type are read.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`

	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`

	CompanyName     string `json:"company_name"`
	OwnerName       string `json:"owner_name"`
	CompanyAddress  string `json:"company_address"`
	ContactPhone    string `json:"contact_phone"`
	Description     string `json:"description"`
	ServicesOffered string `json:"services_offered"`
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	in := usecase.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		Role:     entities.Role(strings.ToLower(strings.TrimSpace(r.UserType))),
	}
	switch in.Role {
	case entities.RoleCustomer:
		in.Customer = entities.CustomerProfile{
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			Address:     r.Address,
			PhoneNumber: r.PhoneNumber,
		}
	case entities.RoleVendor:
		in.Vendor = entities.VendorProfile{
			CompanyName:     r.CompanyName,
			OwnerName:       r.OwnerName,
			CompanyAddress:  r.CompanyAddress,
			ContactPhone:    r.ContactPhone,
			Description:     r.Description,
			ServicesOffered: r.ServicesOffered,
		}
	}
	return in
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateAdminRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Title     string `json:"title"`
}

func (r CreateAdminRequest) ToInput() usecase.CreateAdminInput {
	return usecase.CreateAdminInput{
		Email:    r.Email,
		Password: r.Password,
		Profile:  entities.AdminProfile{FirstName: r.FirstName, LastName: r.LastName, Title: r.Title},
	}
}
