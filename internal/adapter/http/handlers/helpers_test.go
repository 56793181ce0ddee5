package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"solar_marketplace/internal/adapter/http/middleware"
	"solar_marketplace/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// asUser stands in for the access gate in handler tests.
func asUser(u entities.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCurrentUser(c, u)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var (
	testCustomer = entities.User{ID: "cust-1", Email: "c@x.com", Role: entities.RoleCustomer, Active: true}
	testVendor   = entities.User{ID: "vend-1", Email: "v@x.com", Role: entities.RoleVendor, Active: true}
	testAdmin    = entities.User{ID: "adm-1", Email: "a@x.com", Role: entities.RoleAdmin, Active: true}
)
