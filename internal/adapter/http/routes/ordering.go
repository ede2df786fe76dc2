package routes

import (
	"smartmenu/internal/adapter/http/handlers"
	"smartmenu/internal/adapter/http/middleware"
	"smartmenu/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathMenu     = "/menu"
	PathSessions = "/sessions"
	PathOrders   = "/orders"
	PathAdmin    = "/admin"
)

func addMenuRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	menu := rg.Group(PathMenu)
	{
		menu.GET("", h.ListItems)
		menu.GET("/categories", h.Categories)
		menu.GET("/:item_id", h.GetItem)
	}
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", h.Open)
		sessions.GET("/:session_id", h.Get)
		sessions.DELETE("/:session_id", h.Close)
		sessions.PUT("/:session_id/customer", h.SetCustomer)
		sessions.PUT("/:session_id/payment-method", h.SetPaymentMethod)
		sessions.POST("/:session_id/orders", h.SubmitOrder)

		sessions.POST("/:session_id/cart/items", h.AddCartItem)
		sessions.PATCH("/:session_id/cart/items/:item_id", h.SetCartItemQuantity)
		sessions.DELETE("/:session_id/cart/items/:item_id", h.RemoveCartItem)
		sessions.DELETE("/:session_id/cart", h.ClearCart)
	}
}

// Kitchen and pickup boards.
func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.List)
		orders.GET("/:order_id", h.GetByID)
		orders.PATCH("/:order_id/status", h.UpdateStatus)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, admin *handlers.AdminHandler, orders *handlers.OrderHandler, verifier middleware.TokenVerifier) {
	group := rg.Group(PathAdmin)
	group.POST("/login", admin.Login)

	protected := group.Group("", middleware.RequireRole(verifier, usecase.RoleAdmin))
	{
		protected.GET("/orders", orders.List)
		protected.GET("/stats", orders.Stats)
		protected.PATCH("/orders/:order_id/status", orders.UpdateStatus)
	}
}
