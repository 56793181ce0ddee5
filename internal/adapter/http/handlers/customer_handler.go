package handlers

import (
	"errors"
	"net/http"

	request "solar_marketplace/internal/adapter/http/dto/request"
	response "solar_marketplace/internal/adapter/http/dto/response"
	"solar_marketplace/internal/adapter/http/middleware"
	"solar_marketplace/internal/usecase"
	"solar_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves the customer side of the marketplace: posting
// requests, reviewing and comparing the quotations they attract, and
// deciding on them.
type CustomerHandler struct {
	requests   usecase.IQuotationRequestUseCase
	quotations usecase.IVendorQuotationUseCase
}

func NewCustomerHandler(requests usecase.IQuotationRequestUseCase, quotations usecase.IVendorQuotationUseCase) *CustomerHandler {
	return &CustomerHandler{requests: requests, quotations: quotations}
}

// CreateRequest godoc
// @Summary      Post a quotation request
// @Tags         customer
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CreateQuotationRequestRequest  true  "Property details"
// @Success      201   {object}  response.QuotationRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /customer/requests [post]
func (h *CustomerHandler) CreateRequest(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.CreateQuotationRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	created, err := h.requests.Create(c.Request.Context(), user.ID, payload.ToInput())
	if err != nil {
		writeError(c, mapMarketplaceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotationRequest(created))
}

// ListRequests godoc
// @Summary      List own quotation requests, newest first
// @Tags         customer
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.QuotationRequestResponse
// @Router       /customer/requests [get]
func (h *CustomerHandler) ListRequests(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	list, err := h.requests.ListForCustomer(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, mapMarketplaceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuotationRequests(list))
}

// GetRequest godoc
// @Summary      Own request with its quotations
// @Description  Submitted quotations are marked viewed.
// @Tags         customer
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.RequestDetailResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /customer/requests/{id} [get]
func (h *CustomerHandler) GetRequest(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	detail, err := h.requests.GetForCustomer(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		writeError(c, mapMarketplaceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromRequestDetail(detail))
}

// CompareQuotations godoc
// @Summary      Rank the quotations of an own request
// @Tags         customer
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.ComparisonResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /customer/requests/{id}/comparison [get]
func (h *CustomerHandler) CompareQuotations(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	view, err := h.requests.Compare(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		writeError(c, mapMarketplaceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromComparison(view))
}

// CloseRequest godoc
// @Summary      Close an own request
// @Tags         customer
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.QuotationRequestResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /customer/requests/{id}/close [post]
func (h *CustomerHandler) CloseRequest(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	closed, err := h.requests.Close(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		writeError(c, mapMarketplaceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuotationRequest(closed))
}

// AcceptQuotation godoc
// @Summary      Accept a quotation; closes its request
// @Tags         customer
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  response.QuotationResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /customer/quotations/{id}/accept [patch]
func (h *CustomerHandler) AcceptQuotation(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	q, err := h.quotations.Accept(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		writeError(c, mapMarketplaceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q, ""))
}

// RejectQuotation godoc
// @Summary      Reject a quotation
// @Tags         customer
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  response.QuotationResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /customer/quotations/{id}/reject [patch]
func (h *CustomerHandler) RejectQuotation(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	q, err := h.quotations.Reject(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		writeError(c, mapMarketplaceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q, ""))
}

// mapMarketplaceError translates request and quotation failures for both the
// customer and vendor sides.
func mapMarketplaceError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Quotation request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationAlreadyExists):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_EXISTS", "You have already submitted a quotation for this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestClosed):
		return pkg.NewDomainErrorSimple("REQUEST_CLOSED", "This quotation request is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "The quotation can no longer change status", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoQuotations):
		return pkg.NewDomainErrorSimple("NO_QUOTATIONS", "There are no quotations to compare yet", http.StatusUnprocessableEntity)
	default:
		return internalError(err)
	}
}
