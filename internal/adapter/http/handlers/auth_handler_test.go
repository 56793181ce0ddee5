package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"solar_marketplace/internal/adapter/http/handlers/mocks"
	"solar_marketplace/internal/domain/entities"
	"solar_marketplace/internal/usecase"
	"solar_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newAuthRouter(t *testing.T, secure bool) (*gin.Engine, *mocks.MockIAuthUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc, CookieConfig{Name: "session_token", Secure: secure, MaxAge: 7 * 24 * time.Hour}, zap.NewNop().Sugar())

	r := gin.New()
	r.POST("/v1/auth/register", h.Register)
	r.POST("/v1/auth/login", h.Login)
	r.POST("/v1/auth/logout", h.Logout)
	r.GET("/v1/auth/me", asUser(testCustomer), h.Me)
	return r, uc
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newAuthRouter(t, false)
		w := doJSON(r, http.MethodPost, "/v1/auth/register", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error names the field", func(t *testing.T) {
		r, uc := newAuthRouter(t, false)
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.User{}, &usecase.ValidationError{Field: "password", Reason: "password must be at least 8 characters"})

		w := doJSON(r, http.MethodPost, "/v1/auth/register", `{"email":"a@b.com","password":"short","user_type":"customer"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Field != "password" || body.Code != "VALIDATION_ERROR" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		r, uc := newAuthRouter(t, false)
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.User{}, usecase.ErrEmailAlreadyRegistered)

		w := doJSON(r, http.MethodPost, "/v1/auth/register", `{"email":"a@b.com","password":"longenough","user_type":"customer"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newAuthRouter(t, false)
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.RegisterInput) (entities.User, error) {
			if in.Role != entities.RoleVendor || in.Vendor.CompanyName != "Sun Co" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.User{ID: "u-1", Email: in.Email, Role: in.Role, Active: true}, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/auth/register", `{"email":"v@b.com","password":"longenough","user_type":"vendor","company_name":"Sun Co"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		r, _ := newAuthRouter(t, false)
		w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"email":"a@b.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		r, uc := newAuthRouter(t, false)
		uc.EXPECT().Login(gomock.Any(), "a@b.com", "wrongpass").Return(usecase.LoginResult{}, usecase.ErrInvalidCredentials)

		w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"email":"a@b.com","password":"wrongpass"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if len(w.Result().Cookies()) != 0 {
			t.Fatalf("no cookie expected on failure")
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		r, uc := newAuthRouter(t, false)
		uc.EXPECT().Login(gomock.Any(), "a@b.com", "longenough").Return(usecase.LoginResult{}, usecase.ErrAccountInactive)

		w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"email":"a@b.com","password":"longenough"}`)
		if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "ACCOUNT_INACTIVE") {
			t.Fatalf("expected 401 ACCOUNT_INACTIVE, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success sets cookie", func(t *testing.T) {
		r, uc := newAuthRouter(t, true)
		expires := time.Now().Add(7 * 24 * time.Hour).UTC()
		uc.EXPECT().Login(gomock.Any(), "a@b.com", "longenough").Return(usecase.LoginResult{
			User:    entities.User{ID: "u-1", Email: "a@b.com", Role: entities.RoleCustomer, Active: true},
			Session: entities.Session{Token: "tok-123", UserID: "u-1", ExpiresAt: expires},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"email":"a@b.com","password":"longenough"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		cookies := w.Result().Cookies()
		if len(cookies) != 1 {
			t.Fatalf("expected one cookie, got %d", len(cookies))
		}
		ck := cookies[0]
		if ck.Name != "session_token" || ck.Value != "tok-123" || !ck.HttpOnly || !ck.Secure || ck.Path != "/" || ck.MaxAge != 7*24*3600 {
			t.Fatalf("unexpected cookie: %+v", ck)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("clears cookie", func(t *testing.T) {
		r, uc := newAuthRouter(t, false)
		uc.EXPECT().Logout(gomock.Any(), "tok-123").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: "tok-123"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
			t.Fatalf("expected an expiring cookie, got %+v", cookies)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		r, uc := newAuthRouter(t, false)
		uc.EXPECT().Logout(gomock.Any(), "").Return(errors.New("redis down"))

		w := doJSON(r, http.MethodPost, "/v1/auth/logout", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, uc := newAuthRouter(t, false)
	uc.EXPECT().Me(gomock.Any(), testCustomer.ID).Return(entities.UserWithProfile{
		User:    testCustomer,
		Profile: entities.Profile{UserID: testCustomer.ID, Customer: &entities.CustomerProfile{FirstName: "Ana"}},
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/auth/me", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Ana") {
		t.Fatalf("expected profile in body, got %s", w.Body.String())
	}
}
