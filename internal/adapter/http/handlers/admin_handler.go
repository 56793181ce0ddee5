package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "solar_marketplace/internal/adapter/http/dto/request"
	response "solar_marketplace/internal/adapter/http/dto/response"
	"solar_marketplace/internal/adapter/http/middleware"
	"solar_marketplace/internal/usecase"
	"solar_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves moderation and reporting. Closing a request and
// creating admins reuse the request and auth use cases.
type AdminHandler struct {
	admin    usecase.IAdminUseCase
	auth     usecase.IAuthUseCase
	requests usecase.IQuotationRequestUseCase
	log      *zap.SugaredLogger
}

func NewAdminHandler(admin usecase.IAdminUseCase, auth usecase.IAuthUseCase, requests usecase.IQuotationRequestUseCase, log *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{admin: admin, auth: auth, requests: requests, log: log.With("component", "http.admin")}
}

// Dashboard godoc
// @Summary      Marketplace counts and recent activity
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.DashboardResponse
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.admin.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

// @Summary  List customers with profiles
// @Tags     admin
// @Security Bearer
// @Success  200  {array}  response.UserWithProfileResponse
// @Router   /admin/customers [get]
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	users, err := h.admin.ListCustomers(c.Request.Context())
	if err != nil {
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsersWithProfile(users))
}

// @Summary  List vendors with profiles
// @Tags     admin
// @Security Bearer
// @Success  200  {array}  response.UserWithProfileResponse
// @Router   /admin/vendors [get]
func (h *AdminHandler) ListVendors(c *gin.Context) {
	users, err := h.admin.ListVendors(c.Request.Context())
	if err != nil {
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsersWithProfile(users))
}

// @Summary  List requests, newest first
// @Tags     admin
// @Security Bearer
// @Param    limit  query  int  false  "Maximum rows"
// @Success  200  {array}  response.QuotationRequestResponse
// @Router   /admin/requests [get]
func (h *AdminHandler) ListRequests(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		writeError(c, errInvalidLimit)
		return
	}
	list, err := h.admin.ListRequests(c.Request.Context(), limit)
	if err != nil {
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationRequests(list))
}

// @Summary  List quotations, newest first
// @Tags     admin
// @Security Bearer
// @Param    limit  query  int  false  "Maximum rows"
// @Success  200  {array}  response.QuotationResponse
// @Router   /admin/quotations [get]
func (h *AdminHandler) ListQuotations(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		writeError(c, errInvalidLimit)
		return
	}
	list, err := h.admin.ListQuotations(c.Request.Context(), limit)
	if err != nil {
		writeError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotations(list))
}

// SetVendorVerification godoc
// @Summary      Set a vendor's verification status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                             true  "Vendor user ID"
// @Param        body  body      request.VendorVerificationRequest  true  "pending, verified or rejected"
// @Success      204
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /admin/vendors/{id}/verification [patch]
func (h *AdminHandler) SetVendorVerification(c *gin.Context) {
	var payload request.VendorVerificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	actor, _ := middleware.CurrentUser(c)
	if _, err := h.admin.SetVendorVerification(c.Request.Context(), c.Param("id"), payload.VerificationStatus()); err != nil {
		writeError(c, mapAdminError(err))
		return
	}
	h.log.Infow("vendor verification changed", "admin_id", actor.ID, "vendor_id", c.Param("id"), "status", payload.VerificationStatus())
	c.Status(http.StatusNoContent)
}

// SetUserActive godoc
// @Summary      Activate or deactivate a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                     true  "User ID"
// @Param        body  body      request.UserActiveRequest  true  "Active flag"
// @Success      200   {object}  response.UserResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /admin/users/{id}/active [patch]
func (h *AdminHandler) SetUserActive(c *gin.Context) {
	var payload request.UserActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	actor, _ := middleware.CurrentUser(c)
	user, err := h.admin.SetUserActive(c.Request.Context(), actor, c.Param("id"), *payload.Active)
	if err != nil {
		writeError(c, mapAdminError(err))
		return
	}
	h.log.Infow("user active flag changed", "admin_id", actor.ID, "user_id", user.ID, "active", user.Active)
	c.JSON(http.StatusOK, response.FromUser(user))
}

// @Summary  Close any request
// @Tags     admin
// @Security Bearer
// @Param    id  path  string  true  "Request ID"
// @Success  200  {object}  response.QuotationRequestResponse
// @Router   /admin/requests/{id}/close [post]
func (h *AdminHandler) CloseRequest(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	closed, err := h.requests.Close(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, mapMarketplaceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationRequest(closed))
}

// CreateAdmin godoc
// @Summary      Create another admin account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CreateAdminRequest  true  "Admin account"
// @Success      201   {object}  response.UserResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /admin/admins [post]
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var payload request.CreateAdminRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	user, err := h.auth.CreateAdmin(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

// parseLimit reads ?limit=. A missing value is 0, which the use case
// replaces with its default.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func mapAdminError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCannotDeactivateSelf):
		return pkg.NewDomainErrorSimple("CANNOT_DEACTIVATE_SELF", "Admins cannot deactivate their own account", http.StatusConflict)
	default:
		return internalError(err)
	}
}
