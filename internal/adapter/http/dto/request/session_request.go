package request

import (
	"errors"
	"strings"

	"smartmenu/internal/domain/entities"
)

var (
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidQuantity      = errors.New("invalid quantity")
)

type CustomerRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddCartItemRequest adds a catalog item to the session cart. Quantity
// defaults to 1 when omitted. The max tag mirrors entities.MaxItemQuantity.
type AddCartItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity *int   `json:"quantity" binding:"omitempty,max=99"`
}

func (r AddCartItemRequest) ResolveItemID() string {
	return strings.TrimSpace(r.ItemID)
}

func (r AddCartItemRequest) ResolveQuantity() (int, error) {
	if r.Quantity == nil {
		return 1, nil
	}
	if *r.Quantity <= 0 || *r.Quantity > entities.MaxItemQuantity {
		return 0, ErrInvalidQuantity
	}
	return *r.Quantity, nil
}

// CartItemQuantityRequest sets the quantity of a cart line; zero or less
// removes the line.
type CartItemQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,max=99"`
}

type PaymentMethodRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

func (r PaymentMethodRequest) Resolve() (entities.PaymentMethod, error) {
	m, ok := entities.ParsePaymentMethod(r.PaymentMethod)
	if !ok {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}
