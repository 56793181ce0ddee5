package handlers

import (
	"net/http"
	"testing"

	"solar_marketplace/internal/adapter/http/handlers/mocks"
	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type adminMocks struct {
	admin    *mocks.MockIAdminUseCase
	auth     *mocks.MockIAuthUseCase
	requests *mocks.MockIQuotationRequestUseCase
}

func newAdminRouter(t *testing.T) (*gin.Engine, adminMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := adminMocks{
		admin:    mocks.NewMockIAdminUseCase(ctrl),
		auth:     mocks.NewMockIAuthUseCase(ctrl),
		requests: mocks.NewMockIQuotationRequestUseCase(ctrl),
	}
	h := NewAdminHandler(m.admin, m.auth, m.requests, zap.NewNop().Sugar())

	r := gin.New()
	g := r.Group("/v1/admin", asUser(testAdmin))
	g.GET("/dashboard", h.Dashboard)
	g.GET("/customers", h.ListCustomers)
	g.GET("/vendors", h.ListVendors)
	g.GET("/requests", h.ListRequests)
	g.GET("/quotations", h.ListQuotations)
	g.PATCH("/vendors/:id/verification", h.SetVendorVerification)
	g.PATCH("/users/:id/active", h.SetUserActive)
	g.POST("/requests/:id/close", h.CloseRequest)
	g.POST("/admins", h.CreateAdmin)
	return r, m
}

func TestAdminHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, m := newAdminRouter(t)
	m.admin.EXPECT().Dashboard(gomock.Any()).Return(usecase.Dashboard{Customers: 2, Vendors: 1, Requests: 3, Quotations: 4}, nil)

	w := doJSON(r, http.MethodGet, "/v1/admin/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAdminHandler_ListRequestsLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("default limit", func(t *testing.T) {
		r, m := newAdminRouter(t)
		m.admin.EXPECT().ListRequests(gomock.Any(), 0).Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/admin/requests", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("explicit limit", func(t *testing.T) {
		r, m := newAdminRouter(t)
		m.admin.EXPECT().ListQuotations(gomock.Any(), 5).Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/admin/quotations?limit=5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		r, _ := newAdminRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/admin/requests?limit=abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAdminHandler_SetVendorVerification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status", func(t *testing.T) {
		r, _ := newAdminRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/admin/vendors/v-1/verification", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not a vendor", func(t *testing.T) {
		r, m := newAdminRouter(t)
		m.admin.EXPECT().SetVendorVerification(gomock.Any(), "c-1", entities.VerificationVerified).Return(entities.Profile{}, usecase.ErrUserNotFound)

		w := doJSON(r, http.MethodPatch, "/v1/admin/vendors/c-1/verification", `{"verification_status":"Verified"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, m := newAdminRouter(t)
		m.admin.EXPECT().SetVendorVerification(gomock.Any(), "v-1", entities.VerificationRejected).Return(entities.Profile{UserID: "v-1"}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/admin/vendors/v-1/verification", `{"verification_status":"rejected"}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestAdminHandler_SetUserActive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("active is required", func(t *testing.T) {
		r, _ := newAdminRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/admin/users/u-1/active", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("self deactivation", func(t *testing.T) {
		r, m := newAdminRouter(t)
		m.admin.EXPECT().SetUserActive(gomock.Any(), testAdmin, testAdmin.ID, false).Return(entities.User{}, usecase.ErrCannotDeactivateSelf)

		w := doJSON(r, http.MethodPatch, "/v1/admin/users/"+testAdmin.ID+"/active", `{"active":false}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("deactivate customer", func(t *testing.T) {
		r, m := newAdminRouter(t)
		m.admin.EXPECT().SetUserActive(gomock.Any(), testAdmin, "u-1", false).Return(entities.User{ID: "u-1", Active: false}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/admin/users/u-1/active", `{"active":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAdminHandler_CloseAndCreateAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("close any request", func(t *testing.T) {
		r, m := newAdminRouter(t)
		m.requests.EXPECT().Close(gomock.Any(), testAdmin, "req-1").Return(entities.QuotationRequest{ID: "req-1", Status: entities.RequestStatusClosed}, nil)

		w := doJSON(r, http.MethodPost, "/v1/admin/requests/req-1/close", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("create admin duplicate", func(t *testing.T) {
		r, m := newAdminRouter(t)
		m.auth.EXPECT().CreateAdmin(gomock.Any(), gomock.Any()).Return(entities.User{}, usecase.ErrEmailAlreadyRegistered)

		w := doJSON(r, http.MethodPost, "/v1/admin/admins", `{"email":"a2@x.com","password":"longenough"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
