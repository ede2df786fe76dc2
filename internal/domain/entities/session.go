package entities

import "github.com/shopspring/decimal"

// Session is a read-only view of one customer's ordering state.
type Session struct {
	ID            string          `json:"id"`
	Customer      *Customer       `json:"customer,omitempty"`
	Items         []OrderItem     `json:"items"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	Total         decimal.Decimal `json:"total"`
}
