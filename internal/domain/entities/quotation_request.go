package entities

import "time"

// RequestStatus is the lifecycle of a customer's quotation request.
//
//	open -> in_progress -> closed
//
// closed is terminal.
type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "open"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusClosed     RequestStatus = "closed"
)

// QuotationRequest is owned exclusively by the issuing customer.
type QuotationRequest struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customer_id"`
	Address     string        `json:"address"`
	DeviceCount int           `json:"device_count"`
	MonthlyBill float64       `json:"monthly_bill"`
	Notes       string        `json:"notes,omitempty"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// AcceptingQuotations reports whether vendors may still submit.
func (r QuotationRequest) AcceptingQuotations() bool {
	return r.Status == RequestStatusOpen || r.Status == RequestStatusInProgress
}
