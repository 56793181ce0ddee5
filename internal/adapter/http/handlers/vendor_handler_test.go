package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"solar_marketplace/internal/adapter/http/handlers/mocks"
	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newVendorRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuotationRequestUseCase, *mocks.MockIVendorQuotationUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	requests := mocks.NewMockIQuotationRequestUseCase(ctrl)
	quotations := mocks.NewMockIVendorQuotationUseCase(ctrl)
	h := NewVendorHandler(requests, quotations)

	r := gin.New()
	g := r.Group("/v1/vendor", asUser(testVendor))
	g.GET("/requests", h.ListOpenRequests)
	g.GET("/requests/:id", h.GetRequest)
	g.POST("/quotations", h.SubmitQuotation)
	g.GET("/quotations", h.ListQuotations)
	return r, requests, quotations
}

func TestVendorHandler_SubmitQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := `{"request_id":"req-1","price":12500,"installation_timeframe":"2 weeks","warranty_period":"10 years"}`

	t.Run("duplicate is conflict", func(t *testing.T) {
		r, _, quotations := newVendorRouter(t)
		quotations.EXPECT().Submit(gomock.Any(), testVendor.ID, gomock.Any()).Return(entities.VendorQuotation{}, usecase.ErrQuotationAlreadyExists)

		w := doJSON(r, http.MethodPost, "/v1/vendor/quotations", body)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		r, _, quotations := newVendorRouter(t)
		quotations.EXPECT().Submit(gomock.Any(), testVendor.ID, gomock.Any()).Return(entities.VendorQuotation{}, usecase.ErrRequestNotFound)

		w := doJSON(r, http.MethodPost, "/v1/vendor/quotations", body)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		r, _, quotations := newVendorRouter(t)
		quotations.EXPECT().Submit(gomock.Any(), testVendor.ID, gomock.Any()).Return(entities.VendorQuotation{}, usecase.ErrForbidden)

		w := doJSON(r, http.MethodPost, "/v1/vendor/quotations", body)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, _, quotations := newVendorRouter(t)
		quotations.EXPECT().Submit(gomock.Any(), testVendor.ID, usecase.SubmitQuotationInput{
			RequestID: "req-1", Price: 12500, InstallationTimeframe: "2 weeks", WarrantyPeriod: "10 years",
		}).Return(entities.VendorQuotation{ID: "q-1", RequestID: "req-1", VendorID: testVendor.ID, Price: 12500, Status: entities.QuotationStatusSubmitted}, nil)

		w := doJSON(r, http.MethodPost, "/v1/vendor/quotations", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestVendorHandler_ListOpenRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, requests, _ := newVendorRouter(t)
	requests.EXPECT().ListAccepting(gomock.Any(), testVendor.ID).Return([]usecase.OpenRequestView{
		{Request: entities.QuotationRequest{ID: "req-2", Status: entities.RequestStatusInProgress}, AlreadyQuoted: true},
		{Request: entities.QuotationRequest{ID: "req-1", Status: entities.RequestStatusOpen}},
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/vendor/requests", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0]["already_quoted"] != true || got[1]["already_quoted"] != false {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestVendorHandler_GetRequestNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, requests, _ := newVendorRouter(t)
	requests.EXPECT().GetForVendor(gomock.Any(), testVendor.ID, "missing").Return(usecase.VendorRequestDetail{}, usecase.ErrRequestNotFound)

	w := doJSON(r, http.MethodGet, "/v1/vendor/requests/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
