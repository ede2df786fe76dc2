package handlers

import (
	"net/http"

	"smartmenu/internal/adapter/http/dto/request"
	"smartmenu/internal/adapter/http/dto/response"
	"smartmenu/internal/adapter/http/middleware"
	"smartmenu/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// OrderHandler serves the kitchen and pickup boards and the admin dashboard.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// List godoc
// @Summary      List orders, newest first
// @Tags         orders
// @Produce      json
// @Param        filter  query  string  false  "all, recent or active"
// @Success      200  {array}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	filter, err := usecase.ParseOrderFilter(c.Query("filter"))
	if err != nil {
		writeError(c, "order", err)
		return
	}
	orders, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetByID godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        order_id  path  string  true  "Order id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		writeError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// UpdateStatus godoc
// @Summary      Change an order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path  string                      true  "Order id"
// @Param        body      body  request.OrderStatusRequest  true  "New status"
// @Success      200  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	status, err := payload.Resolve()
	if err != nil {
		writeError(c, "order", err)
		return
	}
	o, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("order_id"), status)
	if err != nil {
		writeError(c, "order", err)
		return
	}

	log := logrus.WithFields(logrus.Fields{"component": "order", "layer": "handler", "order_id": o.ID, "status": o.Status})
	if claims, ok := middleware.ClaimsFrom(c); ok {
		log = log.WithField("updated_by", claims.Subject)
	}
	log.Info("order status changed")
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// Stats godoc
// @Summary      Order counts per status
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.OrderStatsResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Router       /admin/stats [get]
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		writeError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderStats(stats))
}
