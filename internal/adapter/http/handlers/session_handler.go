package handlers

import (
	"net/http"

	"smartmenu/internal/adapter/http/dto/request"
	"smartmenu/internal/adapter/http/dto/response"
	"smartmenu/internal/domain/entities"
	"smartmenu/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionHandler drives one customer's ordering flow: identification, cart,
// payment method and submission.

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// Open godoc
// @Summary      Open an ordering session
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  response.SessionResponse
// @Router       /sessions [post]
func (h *SessionHandler) Open(c *gin.Context) {
	s, err := h.usecase.Open(c.Request.Context())
	if err != nil {
		writeError(c, "session", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

// Get godoc
// @Summary      Get session state
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	h.respond(c, s, err)
}

// Close godoc
// @Summary      Close a session
// @Tags         sessions
// @Param        session_id  path  string  true  "Session id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id} [delete]
func (h *SessionHandler) Close(c *gin.Context) {
	if err := h.usecase.Close(c.Request.Context(), c.Param("session_id")); err != nil {
		writeError(c, "session", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetCustomer godoc
// @Summary      Identify the customer
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                   true  "Session id"
// @Param        body        body  request.CustomerRequest  true  "Customer"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/customer [put]
func (h *SessionHandler) SetCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	s, err := h.usecase.SetCustomer(c.Request.Context(), c.Param("session_id"), payload.Name)
	h.respond(c, s, err)
}

// AddCartItem godoc
// @Summary      Add a menu item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                      true  "Session id"
// @Param        body        body  request.AddCartItemRequest  true  "Item"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/cart/items [post]
func (h *SessionHandler) AddCartItem(c *gin.Context) {
	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	qty, err := payload.ResolveQuantity()
	if err != nil {
		writeError(c, "session", err)
		return
	}
	s, err := h.usecase.AddCartItem(c.Request.Context(), c.Param("session_id"), payload.ResolveItemID(), qty)
	h.respond(c, s, err)
}

// SetCartItemQuantity godoc
// @Summary      Change the quantity of a cart line
// @Description  A quantity of zero or less removes the line; the maximum is 99. Unknown items are ignored.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                           true  "Session id"
// @Param        item_id     path  string                           true  "Menu item id"
// @Param        body        body  request.CartItemQuantityRequest  true  "Quantity"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/cart/items/{item_id} [patch]
func (h *SessionHandler) SetCartItemQuantity(c *gin.Context) {
	var payload request.CartItemQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	s, err := h.usecase.SetCartItemQuantity(c.Request.Context(), c.Param("session_id"), c.Param("item_id"), *payload.Quantity)
	h.respond(c, s, err)
}

// RemoveCartItem godoc
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Param        session_id  path  string  true  "Session id"
// @Param        item_id     path  string  true  "Menu item id"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/cart/items/{item_id} [delete]
func (h *SessionHandler) RemoveCartItem(c *gin.Context) {
	s, err := h.usecase.RemoveCartItem(c.Request.Context(), c.Param("session_id"), c.Param("item_id"))
	h.respond(c, s, err)
}

// ClearCart godoc
// @Summary      Empty the cart
// @Tags         cart
// @Produce      json
// @Param        session_id  path  string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/cart [delete]
func (h *SessionHandler) ClearCart(c *gin.Context) {
	s, err := h.usecase.ClearCart(c.Request.Context(), c.Param("session_id"))
	h.respond(c, s, err)
}

// SetPaymentMethod godoc
// @Summary      Choose the payment method
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                        true  "Session id"
// @Param        body        body  request.PaymentMethodRequest  true  "PIX or CARD"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/payment-method [put]
func (h *SessionHandler) SetPaymentMethod(c *gin.Context) {
	var payload request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	method, err := payload.Resolve()
	if err != nil {
		writeError(c, "session", err)
		return
	}
	s, err := h.usecase.SetPaymentMethod(c.Request.Context(), c.Param("session_id"), method)
	h.respond(c, s, err)
}

// SubmitOrder godoc
// @Summary      Submit the cart as an order
// @Description  Requires a customer, a payment method and a non-empty cart. On success the cart is emptied.
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session id"
// @Success      201  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/orders [post]
func (h *SessionHandler) SubmitOrder(c *gin.Context) {
	sessionID := c.Param("session_id")
	o, err := h.usecase.SubmitOrder(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, "session", err)
		return
	}
	logrus.WithFields(logrus.Fields{
		"component":  "session",
		"layer":      "handler",
		"session_id": sessionID,
		"order_id":   o.ID,
	}).Info("order submitted")
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

func (h *SessionHandler) respond(c *gin.Context, s entities.Session, err error) {
	if err != nil {
		writeError(c, "session", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}
