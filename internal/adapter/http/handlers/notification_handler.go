package handlers

import (
	"errors"
	"net/http"

	response "solar_marketplace/internal/adapter/http/dto/response"
	"solar_marketplace/internal/adapter/http/middleware"
	"solar_marketplace/internal/usecase"
	"solar_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// List godoc
// @Summary      Newest notifications for the caller
// @Tags         notifications
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.FeedResponse
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	feed, err := h.usecase.List(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromFeed(feed))
}

// UnreadCount godoc
// @Summary      Unread notification count
// @Tags         notifications
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.UnreadCountResponse
// @Router       /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	n, err := h.usecase.UnreadCount(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}

	c.JSON(http.StatusOK, response.UnreadCountResponse{Unread: n})
}

// MarkRead godoc
// @Summary      Mark one notification as read
// @Tags         notifications
// @Security     Bearer
// @Param        id   path  string  true  "Notification ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := h.usecase.MarkRead(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		writeError(c, mapNotificationError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func mapNotificationError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrNotificationNotFound) {
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	}
	return internalError(err)
}
