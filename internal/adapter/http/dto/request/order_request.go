package request

import (
	"errors"

	"smartmenu/internal/domain/entities"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r OrderStatusRequest) Resolve() (entities.OrderStatus, error) {
	s, ok := entities.ParseOrderStatus(r.Status)
	if !ok {
		return "", ErrInvalidOrderStatus
	}
	return s, nil
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
