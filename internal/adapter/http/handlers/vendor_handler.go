package handlers

import (
	"net/http"

	request "solar_marketplace/internal/adapter/http/dto/request"
	response "solar_marketplace/internal/adapter/http/dto/response"
	"solar_marketplace/internal/adapter/http/middleware"
	"solar_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VendorHandler struct {
	requests   usecase.IQuotationRequestUseCase
	quotations usecase.IVendorQuotationUseCase
}

func NewVendorHandler(requests usecase.IQuotationRequestUseCase, quotations usecase.IVendorQuotationUseCase) *VendorHandler {
	return &VendorHandler{requests: requests, quotations: quotations}
}

// ListOpenRequests godoc
// @Summary      Requests accepting quotations
// @Tags         vendor
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.OpenRequestResponse
// @Router       /vendor/requests [get]
func (h *VendorHandler) ListOpenRequests(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	views, err := h.requests.ListAccepting(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, mapMarketplaceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromOpenRequests(views))
}

// GetRequest godoc
// @Summary      One request plus the caller's quotation for it
// @Tags         vendor
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.VendorRequestDetailResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /vendor/requests/{id} [get]
func (h *VendorHandler) GetRequest(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	detail, err := h.requests.GetForVendor(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		writeError(c, mapMarketplaceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromVendorRequestDetail(detail))
}

// SubmitQuotation godoc
// @Summary      Submit a quotation for a request
// @Tags         vendor
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.SubmitQuotationRequest  true  "Quotation"
// @Success      201   {object}  response.QuotationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /vendor/quotations [post]
func (h *VendorHandler) SubmitQuotation(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.SubmitQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	q, err := h.quotations.Submit(c.Request.Context(), user.ID, payload.ToInput())
	if err != nil {
		writeError(c, mapMarketplaceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(q, ""))
}

// ListQuotations godoc
// @Summary      Own quotations, newest first
// @Tags         vendor
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.VendorQuotationResponse
// @Router       /vendor/quotations [get]
func (h *VendorHandler) ListQuotations(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	views, err := h.quotations.ListForVendor(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, mapMarketplaceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromVendorQuotations(views))
}
