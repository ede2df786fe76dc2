package handlers

import (
	"errors"
	"net/http"

	"smartmenu/internal/adapter/http/dto/request"
	"smartmenu/internal/usecase"
	"smartmenu/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidPayload       = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errPreconditionFailed   = pkg.NewDomainErrorSimple("ORDER_PRECONDITION_FAILED", "Customer, payment method and at least one item are required", http.StatusUnprocessableEntity)
	errInvalidCustomerName  = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_NAME", "Customer name is required", http.StatusBadRequest)
	errInvalidQuantity      = pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be greater than zero", http.StatusBadRequest)
	errInvalidPaymentMethod = pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Payment method must be PIX or CARD", http.StatusBadRequest)
	errInvalidOrderStatus   = pkg.NewDomainErrorSimple("INVALID_ORDER_STATUS", "Invalid order status", http.StatusBadRequest)
	errInvalidOrderFilter   = pkg.NewDomainErrorSimple("INVALID_ORDER_FILTER", "Filter must be all, recent or active", http.StatusBadRequest)
	errMenuItemNotFound     = pkg.NewDomainErrorSimple("MENU_ITEM_NOT_FOUND", "Menu item not found", http.StatusNotFound)
	errSessionNotFound      = pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	errOrderNotFound        = pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	errInvalidCredentials   = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	errAdminNotConfigured   = pkg.NewDomainErrorSimple("ADMIN_NOT_CONFIGURED", "Admin login is not available", http.StatusServiceUnavailable)
)

func mapError(err error) *pkg.AppError {
	var precondition *usecase.PreconditionError
	switch {
	case errors.As(err, &precondition):
		return errPreconditionFailed.WithDetails(map[string]any{"missing": precondition.Missing})
	case errors.Is(err, usecase.ErrPreconditionFailed):
		return errPreconditionFailed
	case errors.Is(err, usecase.ErrInvalidCustomerName):
		return errInvalidCustomerName
	case errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, request.ErrInvalidQuantity):
		return errInvalidQuantity
	case errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, request.ErrInvalidPaymentMethod):
		return errInvalidPaymentMethod
	case errors.Is(err, usecase.ErrInvalidOrderStatus), errors.Is(err, request.ErrInvalidOrderStatus):
		return errInvalidOrderStatus
	case errors.Is(err, usecase.ErrInvalidOrderFilter):
		return errInvalidOrderFilter
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidOrderID):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrMenuItemNotFound):
		return errMenuItemNotFound
	case errors.Is(err, usecase.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, usecase.ErrOrderNotFound):
		return errOrderNotFound
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, usecase.ErrAdminNotConfigured):
		return errAdminNotConfigured
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, component string, err error) {
	appErr := mapError(err)
	log := logrus.WithFields(logrus.Fields{
		"component": component,
		"layer":     "handler",
		"path":      c.FullPath(),
		"code":      appErr.Code,
	})
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	} else {
		log.WithError(err).Info("request rejected")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
