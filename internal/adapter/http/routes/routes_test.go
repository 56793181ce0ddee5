package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"solar_marketplace/internal/infrastructure/config"
	"solar_marketplace/internal/infrastructure/events"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type apiClient struct {
	t      *testing.T
	router http.Handler
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		Env:                "test",
		Session:            config.SessionConfig{TTL: time.Hour, CookieName: "session_token"},
		CORSAllowedOrigins: []string{"*"},
	}
	router, _ := newRouter(cfg, memoryGateway(), events.NopPublisher{}, prometheus.NewRegistry(), zap.NewNop().Sugar())
	return &apiClient{t: t, router: router}
}

func (a *apiClient) do(method, path, token string, body any, headers ...string) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *apiClient) decode(w *httptest.ResponseRecorder, v any) {
	a.t.Helper()
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (a *apiClient) login(email, password string) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/v1/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	var out struct {
		Token string `json:"token"`
	}
	a.decode(w, &out)
	require.Len(a.t, out.Token, 64)
	return out.Token
}

func (a *apiClient) registerVendor(email, company string) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/v1/auth/register", "", map[string]string{
		"email": email, "password": "vendorpass", "user_type": "vendor",
		"company_name": company, "owner_name": "Owner", "company_address": "2 Panel Rd", "contact_phone": "555-0101",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return a.login(email, "vendorpass")
}

func TestPublicEndpoints(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/v1/ping", "", nil).Code)

	w := api.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "solar_http_request_duration_seconds")
}

func TestAccessGate(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/v1/auth/register", "", map[string]string{
		"email": "Ana@Example.com", "password": "customerpass", "user_type": "customer", "first_name": "Ana", "last_name": "Silva",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	customer := api.login("ana@example.com", "customerpass")

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/v1/customer/requests", "", nil).Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/v1/customer/requests", strings.Repeat("a", 64), nil).Code)
	})

	t.Run("browser redirected to login", func(t *testing.T) {
		w := api.do(http.MethodGet, "/v1/admin/dashboard", "", nil, "Accept", "text/html")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, "/v1/vendor/requests", customer, nil).Code)
		assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, "/v1/admin/dashboard", customer, nil).Code)
	})

	t.Run("any role reaches me", func(t *testing.T) {
		w := api.do(http.MethodGet, "/v1/auth/me", customer, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ana@example.com")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		w := api.do(http.MethodPost, "/v1/auth/register", "", map[string]string{
			"email": "ana@example.com", "password": "customerpass", "user_type": "customer", "first_name": "Ana", "last_name": "Silva",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("logout ends the session", func(t *testing.T) {
		token := api.login("ana@example.com", "customerpass")
		assert.Equal(t, http.StatusNoContent, api.do(http.MethodPost, "/v1/auth/logout", token, nil).Code)
		assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/v1/auth/me", token, nil).Code)
	})
}

func TestQuotationFlow(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/v1/auth/register", "", map[string]string{
		"email": "cust@example.com", "password": "customerpass", "user_type": "customer", "first_name": "Ana", "last_name": "Silva",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	customer := api.login("cust@example.com", "customerpass")
	sunCo := api.registerVendor("sun@example.com", "Sun Co")
	brightCo := api.registerVendor("bright@example.com", "Bright Co")

	w = api.do(http.MethodPost, "/v1/customer/requests", customer, map[string]any{"address": "1 Solar Ave", "device_count": 12, "monthly_bill": 180.5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var request struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	api.decode(w, &request)
	assert.Equal(t, "open", request.Status)

	var feed struct {
		Items []struct {
			Title   string `json:"title"`
			Message string `json:"message"`
		} `json:"items"`
		Unread int `json:"unread"`
	}
	api.decode(api.do(http.MethodGet, "/v1/notifications", sunCo, nil), &feed)
	require.Equal(t, 1, feed.Unread)
	assert.Equal(t, "New Quotation Request", feed.Items[0].Title)
	assert.Contains(t, feed.Items[0].Message, "$180.5")

	submit := func(token string, price float64, warranty string) *httptest.ResponseRecorder {
		return api.do(http.MethodPost, "/v1/vendor/quotations", token, map[string]any{
			"request_id": request.ID, "price": price, "installation_timeframe": "3 weeks", "warranty_period": warranty,
		})
	}

	w = submit(sunCo, 12500, "10 years")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sunQuote struct {
		ID string `json:"id"`
	}
	api.decode(w, &sunQuote)

	assert.Equal(t, http.StatusConflict, submit(sunCo, 12000, "10 years").Code, "second quotation from the same vendor")

	w = submit(brightCo, 11200, "8 years")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var brightQuote struct {
		ID string `json:"id"`
	}
	api.decode(w, &brightQuote)

	var detail struct {
		Request struct {
			Status string `json:"status"`
		} `json:"request"`
		Quotations []struct {
			Status      string `json:"status"`
			CompanyName string `json:"company_name"`
		} `json:"quotations"`
	}
	api.decode(api.do(http.MethodGet, "/v1/customer/requests/"+request.ID, customer, nil), &detail)
	assert.Equal(t, "in_progress", detail.Request.Status)
	require.Len(t, detail.Quotations, 2)
	for _, q := range detail.Quotations {
		assert.Equal(t, "viewed", q.Status)
	}

	var cmp struct {
		LowestPrice struct {
			Quotation struct {
				ID string `json:"id"`
			} `json:"quotation"`
		} `json:"lowest_price"`
		LongestWarranty struct {
			WarrantyYears int `json:"warranty_years"`
		} `json:"longest_warranty"`
		Ranked []json.RawMessage `json:"ranked"`
	}
	w = api.do(http.MethodGet, "/v1/customer/requests/"+request.ID+"/comparison", customer, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	api.decode(w, &cmp)
	assert.Equal(t, brightQuote.ID, cmp.LowestPrice.Quotation.ID)
	assert.Equal(t, 10, cmp.LongestWarranty.WarrantyYears)
	assert.Len(t, cmp.Ranked, 2)

	w = api.do(http.MethodPatch, "/v1/customer/quotations/"+sunQuote.ID+"/accept", customer, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	api.decode(api.do(http.MethodGet, "/v1/customer/requests/"+request.ID, customer, nil), &detail)
	assert.Equal(t, "closed", detail.Request.Status)

	assert.Equal(t, http.StatusConflict, api.do(http.MethodPatch, "/v1/customer/quotations/"+brightQuote.ID+"/accept", customer, nil).Code,
		"siblings are frozen once the request closes")

	var unread struct {
		Unread int `json:"unread"`
	}
	api.decode(api.do(http.MethodGet, "/v1/notifications/unread-count", sunCo, nil), &unread)
	assert.Equal(t, 2, unread.Unread, "new request plus acceptance")

	api.decode(api.do(http.MethodGet, "/v1/notifications/unread-count", customer, nil), &unread)
	assert.Equal(t, 2, unread.Unread, "one per received quotation")
}
