package response

import (
	"time"

	"solar_marketplace/internal/domain/comparison"
	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase"
)

type QuotationRequestResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Address     string    `json:"address"`
	DeviceCount int       `json:"device_count"`
	MonthlyBill float64   `json:"monthly_bill"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromQuotationRequest(r entities.QuotationRequest) QuotationRequestResponse {
	return QuotationRequestResponse{
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

func FromQuotationRequests(rs []entities.QuotationRequest) []QuotationRequestResponse {
	out := make([]QuotationRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromQuotationRequest(r))
	}
	return out
}

type QuotationResponse struct {
	ID                    string    `json:"id"`
	RequestID             string    `json:"request_id"`
	VendorID              string    `json:"vendor_id"`
	CompanyName           string    `json:"company_name,omitempty"`
	Price                 float64   `json:"price"`
	InstallationTimeframe string    `json:"installation_timeframe"`
	WarrantyPeriod        string    `json:"warranty_period"`
	DocumentURL           string    `json:"document_url,omitempty"`
	Notes                 string    `json:"notes,omitempty"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func FromQuotation(q entities.VendorQuotation, companyName string) QuotationResponse {
	return QuotationResponse{
		ID:                    q.ID,
		RequestID:             q.RequestID,
		VendorID:              q.VendorID,
		CompanyName:           companyName,
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

func FromQuotations(qs []entities.VendorQuotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuotation(q, ""))
	}
	return out
}

type RequestDetailResponse struct {
	Request    QuotationRequestResponse `json:"request"`
	Quotations []QuotationResponse      `json:"quotations"`
}

func FromRequestDetail(d usecase.RequestDetail) RequestDetailResponse {
	qs := make([]QuotationResponse, 0, len(d.Quotations))
	for _, v := range d.Quotations {
		qs = append(qs, FromQuotation(v.Quotation, v.CompanyName))
	}
	return RequestDetailResponse{Request: FromQuotationRequest(d.Request), Quotations: qs}
}

type OpenRequestResponse struct {
	QuotationRequestResponse
	AlreadyQuoted bool `json:"already_quoted"`
}

func FromOpenRequests(vs []usecase.OpenRequestView) []OpenRequestResponse {
	out := make([]OpenRequestResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, OpenRequestResponse{QuotationRequestResponse: FromQuotationRequest(v.Request), AlreadyQuoted: v.AlreadyQuoted})
	}
	return out
}

type VendorRequestDetailResponse struct {
	Request   QuotationRequestResponse `json:"request"`
	Quotation *QuotationResponse       `json:"quotation"`
}

func FromVendorRequestDetail(d usecase.VendorRequestDetail) VendorRequestDetailResponse {
	out := VendorRequestDetailResponse{Request: FromQuotationRequest(d.Request)}
	if d.Quotation != nil {
		q := FromQuotation(*d.Quotation, "")
		out.Quotation = &q
	}
	return out
}

type VendorQuotationResponse struct {
	Quotation QuotationResponse        `json:"quotation"`
	Request   QuotationRequestResponse `json:"request"`
}

func FromVendorQuotations(vs []usecase.VendorQuotationView) []VendorQuotationResponse {
	out := make([]VendorQuotationResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, VendorQuotationResponse{Quotation: FromQuotation(v.Quotation, ""), Request: FromQuotationRequest(v.Request)})
	}
	return out
}

type ScoreResponse struct {
	Quotation     QuotationResponse `json:"quotation"`
	WarrantyYears int               `json:"warranty_years"`
	PriceScore    float64           `json:"price_score"`
	WarrantyScore float64           `json:"warranty_score"`
	OverallScore  float64           `json:"overall_score"`
}

type ComparisonResponse struct {
	Request         QuotationRequestResponse `json:"request"`
	Ranked          []ScoreResponse          `json:"ranked"`
	ByPrice         []ScoreResponse          `json:"by_price"`
	Recommended     ScoreResponse            `json:"recommended"`
	LowestPrice     ScoreResponse            `json:"lowest_price"`
	LongestWarranty ScoreResponse            `json:"longest_warranty"`
	AveragePrice    float64                  `json:"average_price"`
}

func FromComparison(v usecase.ComparisonView) ComparisonResponse {
	score := func(s comparison.Score) ScoreResponse {
		return ScoreResponse{
			Quotation:     FromQuotation(s.Quotation, v.CompanyNames[s.Quotation.VendorID]),
			WarrantyYears: s.WarrantyYears,
			PriceScore:    s.PriceScore,
			WarrantyScore: s.WarrantyScore,
			OverallScore:  s.OverallScore,
		}
	}
	scores := func(ss []comparison.Score) []ScoreResponse {
		out := make([]ScoreResponse, 0, len(ss))
		for _, s := range ss {
			out = append(out, score(s))
		}
		return out
	}
	return ComparisonResponse{
		Request:         FromQuotationRequest(v.Request),
		Ranked:          scores(v.Result.Ranked),
		ByPrice:         scores(v.Result.ByPrice),
		Recommended:     score(v.Result.Recommended),
		LowestPrice:     score(v.Result.LowestPrice),
		LongestWarranty: score(v.Result.LongestWarranty),
		AveragePrice:    v.Result.AveragePrice,
	}
}
