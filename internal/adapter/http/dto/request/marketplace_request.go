package request

import (
	"strings"

	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase"
)

type CreateQuotationRequestRequest struct {
	Address     string  `json:"address"`
	DeviceCount int     `json:"device_count"`
	MonthlyBill float64 `json:"monthly_bill"`
	Notes       string  `json:"notes"`
}

func (r CreateQuotationRequestRequest) ToInput() usecase.CreateRequestInput {
	return usecase.CreateRequestInput{
		Address:     r.Address,
		DeviceCount: r.DeviceCount,
		MonthlyBill: r.MonthlyBill,
		Notes:       r.Notes,
	}
}

type SubmitQuotationRequest struct {
	RequestID             string  `json:"request_id"`
	Price                 float64 `json:"price"`
	InstallationTimeframe string  `json:"installation_timeframe"`
	WarrantyPeriod        string  `json:"warranty_period"`
	DocumentURL           string  `json:"document_url"`
	Notes                 string  `json:"notes"`
}

func (r SubmitQuotationRequest) ToInput() usecase.SubmitQuotationInput {
	return usecase.SubmitQuotationInput{
		RequestID:             strings.TrimSpace(r.RequestID),
		Price:                 r.Price,
		InstallationTimeframe: r.InstallationTimeframe,
		WarrantyPeriod:        r.WarrantyPeriod,
		DocumentURL:           r.DocumentURL,
		Notes:                 r.Notes,
	}
}

type VendorVerificationRequest struct {
	Status string `json:"verification_status" binding:"required"`
}

func (r VendorVerificationRequest) VerificationStatus() entities.VerificationStatus {
	return entities.VerificationStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

// UserActiveRequest uses a pointer so an explicit false is distinguishable
// from a missing field.
type UserActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
