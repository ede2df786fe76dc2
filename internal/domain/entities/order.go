package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the payment option chosen before submitting an order.
// No payment is processed; the value is recorded on the order only.

type PaymentMethod string

const (
	PaymentMethodPIX  PaymentMethod = "PIX"
	PaymentMethodCard PaymentMethod = "CARD"
)

// paymentMethodAliases maps accepted input spellings to canonical values.
// CARTAO is the legacy wire value used by older clients.
var paymentMethodAliases = map[string]PaymentMethod{
	"PIX":    PaymentMethodPIX,
	"CARD":   PaymentMethodCard,
	"CARTAO": PaymentMethodCard,
	"CARTÃO": PaymentMethodCard,
}

// ParsePaymentMethod normalizes raw input to a PaymentMethod.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	m, ok := paymentMethodAliases[strings.ToUpper(strings.TrimSpace(raw))]
	return m, ok
}

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodPIX || m == PaymentMethodCard
}

// OrderStatus represents the lifecycle of a submitted order.
//
// Domain notes:
//   - Kitchen flow is pending -> preparing -> ready -> completed.
//   - cancelled is reachable from any non-terminal status.
//   - Staff may move an order back (e.g. ready -> preparing), so transitions
//     are not restricted; only the value itself is validated.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func ParseOrderStatus(raw string) (OrderStatus, bool) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

func (s OrderStatus) IsValid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Customer identifies who placed the order. Only a display name is kept.
type Customer struct {
	Name string `json:"name"`
}

// OrderItem is a cart line or a line of a submitted order.
type OrderItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// Subtotal returns price x quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a submitted cart.
//
// Items and Total are frozen at submission time; Status is the only field
// that changes afterwards.
type Order struct {
	ID            string          `json:"id"`
	Customer      Customer        `json:"customer"`
	Items         []OrderItem     `json:"items"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	Total         decimal.Decimal `json:"total"`
}

// DisplayCode returns the last n characters of the order id, the short code
// shown on kitchen screens and pickup boards.
func (o Order) DisplayCode(n int) string {
	if n <= 0 || n >= len(o.ID) {
		return o.ID
	}
	return o.ID[len(o.ID)-n:]
}

// Clone returns a deep copy so callers cannot mutate the stored item list.
func (o Order) Clone() Order {
	cp := o
	cp.Items = append([]OrderItem(nil), o.Items...)
	return cp
}

// SumItems returns the sum of subtotals of the given lines.
func SumItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
