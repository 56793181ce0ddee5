package postgres

import (
	"time"

	"solar_marketplace/internal/domain/entities"
)

type userModel struct {
	ID           string `gorm:"primaryKey"`
	Email        string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

// profileModel flattens the three role extensions into one row.
type profileModel struct {
	UserID             string `gorm:"primaryKey"`
	Role               string
	FirstName          string
	LastName           string
	Address            string
	PhoneNumber        string
	FederatedIdentity  bool
	ProfileComplete    bool
	CompanyName        string
	OwnerName          string
	CompanyAddress     string
	ContactPhone       string
	Description        string
	ServicesOffered    string
	VerificationStatus string
	Title              string
}

func (profileModel) TableName() string { return "profiles" }

type sessionModel struct {
	ID        string `gorm:"primaryKey"`
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (sessionModel) TableName() string { return "sessions" }

type requestModel struct {
	ID          string `gorm:"primaryKey"`
	CustomerID  string
	Address     string
	DeviceCount int
	MonthlyBill float64
	Notes       string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (requestModel) TableName() string { return "quotation_requests" }

type quotationModel struct {
	ID                    string `gorm:"primaryKey"`
	RequestID             string
	VendorID              string
	Price                 float64
	InstallationTimeframe string
	WarrantyPeriod        string
	DocumentURL           string
	Notes                 string
	Status                string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (quotationModel) TableName() string { return "vendor_quotations" }

type notificationModel struct {
	ID        string `gorm:"primaryKey"`
	UserID    string
	Title     string
	Message   string
	Read      bool
	Type      string
	RelatedID string
	CreatedAt time.Time
}

func (notificationModel) TableName() string { return "notifications" }

func toUserModel(u entities.User) userModel {
	return userModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m userModel) entity() entities.User {
	return entities.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entities.Role(m.Role),
		Active:       m.Active,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func toProfileModel(p entities.Profile) profileModel {
	m := profileModel{UserID: p.UserID, Role: string(p.Role())}
	if c := p.Customer; c != nil {
		m.FirstName, m.LastName = c.FirstName, c.LastName
		m.Address, m.PhoneNumber = c.Address, c.PhoneNumber
		m.FederatedIdentity = c.FederatedIdentity
		m.ProfileComplete = c.ProfileComplete
	}
	if v := p.Vendor; v != nil {
		m.CompanyName, m.OwnerName = v.CompanyName, v.OwnerName
		m.CompanyAddress, m.ContactPhone = v.CompanyAddress, v.ContactPhone
		m.Description, m.ServicesOffered = v.Description, v.ServicesOffered
		m.ProfileComplete = v.ProfileComplete
		m.VerificationStatus = string(v.VerificationStatus)
	}
	if a := p.Admin; a != nil {
		m.FirstName, m.LastName, m.Title = a.FirstName, a.LastName, a.Title
	}
	return m
}

func (m profileModel) entity() entities.Profile {
	p := entities.Profile{UserID: m.UserID}
	switch entities.Role(m.Role) {
	case entities.RoleCustomer:
		p.Customer = &entities.CustomerProfile{
			FirstName:         m.FirstName,
			LastName:          m.LastName,
			Address:           m.Address,
			PhoneNumber:       m.PhoneNumber,
			FederatedIdentity: m.FederatedIdentity,
			ProfileComplete:   m.ProfileComplete,
		}
	case entities.RoleVendor:
		p.Vendor = &entities.VendorProfile{
			CompanyName:        m.CompanyName,
			OwnerName:          m.OwnerName,
			CompanyAddress:     m.CompanyAddress,
			ContactPhone:       m.ContactPhone,
			Description:        m.Description,
			ServicesOffered:    m.ServicesOffered,
			ProfileComplete:    m.ProfileComplete,
			VerificationStatus: entities.VerificationStatus(m.VerificationStatus),
		}
	case entities.RoleAdmin:
		p.Admin = &entities.AdminProfile{FirstName: m.FirstName, LastName: m.LastName, Title: m.Title}
	}
	return p
}

func toSessionModel(s entities.Session) sessionModel {
	return sessionModel{ID: s.ID, Token: s.Token, UserID: s.UserID, ExpiresAt: s.ExpiresAt, CreatedAt: s.CreatedAt}
}

func (m sessionModel) entity() entities.Session {
	return entities.Session{ID: m.ID, Token: m.Token, UserID: m.UserID, ExpiresAt: m.ExpiresAt.UTC(), CreatedAt: m.CreatedAt.UTC()}
}

func toRequestModel(r entities.QuotationRequest) requestModel {
	return requestModel{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		Address:     r.Address,
		DeviceCount: r.DeviceCount,
		MonthlyBill: r.MonthlyBill,
		Notes:       r.Notes,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m requestModel) entity() entities.QuotationRequest {
	return entities.QuotationRequest{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		Address:     m.Address,
		DeviceCount: m.DeviceCount,
		MonthlyBill: m.MonthlyBill,
		Notes:       m.Notes,
		Status:      entities.RequestStatus(m.Status),
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func toQuotationModel(q entities.VendorQuotation) quotationModel {
	return quotationModel{
		ID:                    q.ID,
		RequestID:             q.RequestID,
		VendorID:              q.VendorID,
		Price:                 q.Price,
		InstallationTimeframe: q.InstallationTimeframe,
		WarrantyPeriod:        q.WarrantyPeriod,
		DocumentURL:           q.DocumentURL,
		Notes:                 q.Notes,
		Status:                string(q.Status),
		CreatedAt:             q.CreatedAt,
		UpdatedAt:             q.UpdatedAt,
	}
}

func (m quotationModel) entity() entities.VendorQuotation {
	return entities.VendorQuotation{
		ID:                    m.ID,
		RequestID:             m.RequestID,
		VendorID:              m.VendorID,
		Price:                 m.Price,
		InstallationTimeframe: m.InstallationTimeframe,
		WarrantyPeriod:        m.WarrantyPeriod,
		DocumentURL:           m.DocumentURL,
		Notes:                 m.Notes,
		Status:                entities.QuotationStatus(m.Status),
		CreatedAt:             m.CreatedAt.UTC(),
		UpdatedAt:             m.UpdatedAt.UTC(),
	}
}

func toNotificationModel(n entities.Notification) notificationModel {
	return notificationModel{
		ID:        n.ID,
		UserID:    n.RecipientID,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		Type:      string(n.Type),
		RelatedID: n.RelatedID,
		CreatedAt: n.CreatedAt,
	}
}

func (m notificationModel) entity() entities.Notification {
	return entities.Notification{
		ID:          m.ID,
		RecipientID: m.UserID,
		Title:       m.Title,
		Message:     m.Message,
		Read:        m.Read,
		Type:        entities.NotificationType(m.Type),
		RelatedID:   m.RelatedID,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func mapModels[M, E any](ms []M, entity func(M) E) []E {
	out := make([]E, 0, len(ms))
	for _, m := range ms {
		out = append(out, entity(m))
	}
	return out
}
