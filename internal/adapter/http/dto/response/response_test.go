package response

import (
	"testing"
	"time"

	"solar_marketplace/internal/domain/comparison"
	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase"
)

func TestFromQuotationRequest(t *testing.T) {
	now := time.Now().UTC()
	r := entities.QuotationRequest{ID: "r-1", CustomerID: "c-1", Address: "Rua 1", DeviceCount: 3, MonthlyBill: 210.5, Status: entities.RequestStatusInProgress, CreatedAt: now, UpdatedAt: now}

	res := FromQuotationRequest(r)
	if res.ID != "r-1" || res.CustomerID != "c-1" || res.Status != "in_progress" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.MonthlyBill != 210.5 || res.DeviceCount != 3 {
		t.Fatalf("unexpected numbers: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromRequestDetail_CarriesCompanyNames(t *testing.T) {
	d := usecase.RequestDetail{
		Request: entities.QuotationRequest{ID: "r-1"},
		Quotations: []usecase.QuotationView{
			{Quotation: entities.VendorQuotation{ID: "q-1", VendorID: "v-1"}, CompanyName: "Sun Co"},
		},
	}
	res := FromRequestDetail(d)
	if len(res.Quotations) != 1 || res.Quotations[0].CompanyName != "Sun Co" {
		t.Fatalf("unexpected quotations: %+v", res.Quotations)
	}
}

func TestFromVendorRequestDetail(t *testing.T) {
	res := FromVendorRequestDetail(usecase.VendorRequestDetail{Request: entities.QuotationRequest{ID: "r-1"}})
	if res.Quotation != nil {
		t.Fatalf("expected no quotation, got %+v", res.Quotation)
	}

	q := entities.VendorQuotation{ID: "q-1"}
	res = FromVendorRequestDetail(usecase.VendorRequestDetail{Request: entities.QuotationRequest{ID: "r-1"}, Quotation: &q})
	if res.Quotation == nil || res.Quotation.ID != "q-1" {
		t.Fatalf("expected own quotation, got %+v", res.Quotation)
	}
}

func TestFromComparison(t *testing.T) {
	cheap := comparison.Score{Quotation: entities.VendorQuotation{ID: "q-1", VendorID: "v-1", Price: 100}, OverallScore: 70}
	long := comparison.Score{Quotation: entities.VendorQuotation{ID: "q-2", VendorID: "v-2", Price: 200}, WarrantyYears: 25, OverallScore: 30}
	v := usecase.ComparisonView{
		Request:      entities.QuotationRequest{ID: "r-1"},
		Result:       comparison.Result{Ranked: []comparison.Score{cheap, long}, ByPrice: []comparison.Score{cheap, long}, Recommended: cheap, LowestPrice: cheap, LongestWarranty: long, AveragePrice: 150},
		CompanyNames: map[string]string{"v-1": "Sun Co", "v-2": "Bright Ltd"},
	}

	res := FromComparison(v)
	if res.Recommended.Quotation.CompanyName != "Sun Co" {
		t.Fatalf("unexpected recommended: %+v", res.Recommended)
	}
	if res.LongestWarranty.Quotation.CompanyName != "Bright Ltd" || res.LongestWarranty.WarrantyYears != 25 {
		t.Fatalf("unexpected longest warranty: %+v", res.LongestWarranty)
	}
	if len(res.Ranked) != 2 || res.AveragePrice != 150 {
		t.Fatalf("unexpected ranking: %+v", res)
	}
}

func TestFromFeed(t *testing.T) {
	f := usecase.Feed{Items: []entities.Notification{{ID: "n-1", Type: entities.NotificationNewQuotation}}, Unread: 1}
	res := FromFeed(f)
	if len(res.Items) != 1 || res.Items[0].Type != "new_quotation" || res.Unread != 1 {
		t.Fatalf("unexpected feed: %+v", res)
	}
	if empty := FromFeed(usecase.Feed{}); empty.Items == nil {
		t.Fatalf("items must encode as [] not null")
	}
}
