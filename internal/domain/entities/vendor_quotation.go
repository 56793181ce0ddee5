package entities

import "time"

// QuotationStatus is the lifecycle of a vendor's bid.
//
//	submitted -> viewed -> accepted | rejected
//
// accepted and rejected are terminal and mutually exclusive.
type QuotationStatus string

const (
	QuotationStatusSubmitted QuotationStatus = "submitted"
	QuotationStatusViewed    QuotationStatus = "viewed"
	QuotationStatusAccepted  QuotationStatus = "accepted"
	QuotationStatusRejected  QuotationStatus = "rejected"
)

// VendorQuotation is at most one per (RequestID, VendorID) pair.
type VendorQuotation struct {
	ID                    string          `json:"id"`
	RequestID             string          `json:"request_id"`
	VendorID              string          `json:"vendor_id"`
	Price                 float64         `json:"price"`
	InstallationTimeframe string          `json:"installation_timeframe"`
	WarrantyPeriod        string          `json:"warranty_period"`
	DocumentURL           string          `json:"document_url,omitempty"`
	Notes                 string          `json:"notes,omitempty"`
	Status                QuotationStatus `json:"status"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}
