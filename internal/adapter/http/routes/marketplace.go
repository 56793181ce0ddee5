package routes

import (
	"solar_marketplace/internal/adapter/http/handlers"
	"solar_marketplace/internal/adapter/http/middleware"
	"solar_marketplace/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth          = "/auth"
	PathCustomer      = "/customer"
	PathVendor        = "/vendor"
	PathNotifications = "/notifications"
	PathAdmin         = "/admin"
)

func addAuthRoutes(rg *gin.RouterGroup, gate *middleware.Gate, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", gate.Require(), h.Me)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, gate *middleware.Gate, h *handlers.CustomerHandler) {
	customer := rg.Group(PathCustomer, gate.Require(entities.RoleCustomer))
	{
		customer.POST("/requests", h.CreateRequest)
		customer.GET("/requests", h.ListRequests)
		customer.GET("/requests/:id", h.GetRequest)
		customer.GET("/requests/:id/comparison", h.CompareQuotations)
		customer.POST("/requests/:id/close", h.CloseRequest)
		customer.PATCH("/quotations/:id/accept", h.AcceptQuotation)
		customer.PATCH("/quotations/:id/reject", h.RejectQuotation)
	}
}

func addVendorRoutes(rg *gin.RouterGroup, gate *middleware.Gate, h *handlers.VendorHandler) {
	vendor := rg.Group(PathVendor, gate.Require(entities.RoleVendor))
	{
		vendor.GET("/requests", h.ListOpenRequests)
		vendor.GET("/requests/:id", h.GetRequest)
		vendor.POST("/quotations", h.SubmitQuotation)
		vendor.GET("/quotations", h.ListQuotations)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, gate *middleware.Gate, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications, gate.Require())
	{
		notifications.GET("", h.List)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.PATCH("/:id/read", h.MarkRead)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, gate *middleware.Gate, h *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin, gate.Require(entities.RoleAdmin))
	{
		admin.GET("/dashboard", h.Dashboard)
		admin.GET("/customers", h.ListCustomers)
		admin.GET("/vendors", h.ListVendors)
		admin.GET("/requests", h.ListRequests)
		admin.GET("/quotations", h.ListQuotations)
		admin.PATCH("/vendors/:id/verification", h.SetVendorVerification)
		admin.PATCH("/users/:id/active", h.SetUserActive)
		admin.POST("/requests/:id/close", h.CloseRequest)
		admin.POST("/admins", h.CreateAdmin)
	}
}
