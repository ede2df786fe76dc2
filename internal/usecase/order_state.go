package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"smartmenu/internal/domain/entities"
	"smartmenu/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrPreconditionFailed   = errors.New("order precondition failed")
	ErrInvalidCustomerName  = errors.New("invalid customer name")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
)

// Missing precondition names reported by PreconditionError.
const (
	MissingCustomer      = "customer"
	MissingPaymentMethod = "payment_method"
	MissingItems         = "items"
)

// PreconditionError lists every precondition SubmitOrder found unmet.
// It matches ErrPreconditionFailed with errors.Is.
type PreconditionError struct {
	Missing []string
}

func (e *PreconditionError) Error() string {
	return ErrPreconditionFailed.Error() + ": missing " + strings.Join(e.Missing, ", ")
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPreconditionFailed
}

var orderLog = logrus.WithFields(logrus.Fields{"component": "order", "layer": "usecase"})

// OrderState is the single holder of one customer's ordering state: the
// customer, the cart and the pending payment method, plus a handle on the
// shared list of submitted orders.
//
// Every operation runs to completion under one mutex, so a single OrderState
// may be shared by concurrent requests of the same session.
type OrderState struct {
	mu            sync.Mutex
	customer      *entities.Customer
	cart          entities.Cart
	paymentMethod entities.PaymentMethod

	orders  interfaces.IOrderRepository
	metrics interfaces.IOrderMetrics
	now     func() time.Time
	newID   func() (string, error)
}

type OrderStateOption func(*OrderState)

func WithClock(now func() time.Time) OrderStateOption {
	return func(s *OrderState) { s.now = now }
}

func WithIDGenerator(newID func() (string, error)) OrderStateOption {
	return func(s *OrderState) { s.newID = newID }
}

func WithMetrics(m interfaces.IOrderMetrics) OrderStateOption {
	return func(s *OrderState) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewOrderState returns an empty state appending submitted orders to orders.
func NewOrderState(orders interfaces.IOrderRepository, opts ...OrderStateOption) *OrderState {
	s := &OrderState{
		orders:  orders,
		metrics: noopMetrics{},
		now:     func() time.Time { return time.Now().UTC() },
		newID:   newOrderID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newOrderID returns a UUIDv7: ids sort by creation time, and their trailing
// characters work as short display codes.
func newOrderID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *OrderState) SetCustomer(c entities.Customer) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return ErrInvalidCustomerName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = &entities.Customer{Name: name}
	return nil
}

// AddCartItem merges quantity into the line for item. The merged quantity
// may not exceed entities.MaxItemQuantity.
func (s *OrderState) AddCartItem(item entities.MenuItem, quantity int) error {
	if quantity <= 0 || quantity > entities.MaxItemQuantity {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart.Quantity(item.ID)+quantity > entities.MaxItemQuantity {
		return ErrInvalidQuantity
	}
	s.cart.Add(item, quantity)
	return nil
}

func (s *OrderState) RemoveCartItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(itemID)
}

// SetCartItemQuantity removes the line when quantity <= 0. Quantities above
// entities.MaxItemQuantity are rejected.
func (s *OrderState) SetCartItemQuantity(itemID string, quantity int) error {
	if quantity > entities.MaxItemQuantity {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(itemID, quantity)
	return nil
}

func (s *OrderState) SetPaymentMethod(m entities.PaymentMethod) error {
	if !m.IsValid() {
		return ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentMethod = m
	return nil
}

// ClearCart empties the cart and unsets the payment method. Submitted orders
// and the customer are kept.
func (s *OrderState) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCartLocked()
}

func (s *OrderState) clearCartLocked() {
	s.cart.Clear()
	s.paymentMethod = ""
}

func (s *OrderState) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// Customer returns nil until SetCustomer succeeds.
func (s *OrderState) Customer() *entities.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.customer == nil {
		return nil
	}
	c := *s.customer
	return &c
}

func (s *OrderState) CartItems() []entities.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// PaymentMethod returns "" while no method is selected.
func (s *OrderState) PaymentMethod() entities.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentMethod
}

// Snapshot returns customer, cart, payment method and total read atomically.
func (s *OrderState) Snapshot() entities.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var customer *entities.Customer
	if s.customer != nil {
		c := *s.customer
		customer = &c
	}
	return entities.Session{
		Customer:      customer,
		Items:         s.cart.Items(),
		PaymentMethod: s.paymentMethod,
		Total:         s.cart.Total(),
	}
}

func (s *OrderState) Orders(ctx context.Context) ([]entities.Order, error) {
	return s.orders.List(ctx)
}

// SubmitOrder turns the cart into a pending order.
//
// Preconditions: customer set, payment method chosen, cart not empty. When any
// is unmet a *PreconditionError is returned and nothing changes. On success
// the cart and payment method are cleared; the customer is kept.
func (s *OrderState) SubmitOrder(ctx context.Context) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var missing []string
	if s.customer == nil {
		missing = append(missing, MissingCustomer)
	}
	if s.paymentMethod == "" {
		missing = append(missing, MissingPaymentMethod)
	}
	if s.cart.IsEmpty() {
		missing = append(missing, MissingItems)
	}
	if len(missing) > 0 {
		orderLog.WithField("missing", missing).Info("submit rejected")
		s.metrics.SubmissionRejected(missing)
		return entities.Order{}, &PreconditionError{Missing: missing}
	}

	id, err := s.newID()
	if err != nil {
		orderLog.WithError(err).Error("order id generation failed")
		return entities.Order{}, err
	}

	o := entities.Order{
		ID:            id,
		Customer:      *s.customer,
		Items:         s.cart.Items(),
		PaymentMethod: s.paymentMethod,
		Status:        entities.OrderStatusPending,
		CreatedAt:     s.now(),
		Total:         s.cart.Total(),
	}

	created, err := s.orders.Create(ctx, o)
	if err != nil {
		orderLog.WithError(err).WithField("order_id", id).Error("order repository create failed")
		return entities.Order{}, err
	}

	s.clearCartLocked()
	s.metrics.OrderSubmitted(created.PaymentMethod, created.Total)
	orderLog.WithFields(logrus.Fields{
		"order_id":       created.ID,
		"customer":       created.Customer.Name,
		"payment_method": created.PaymentMethod,
		"items":          len(created.Items),
		"total":          created.Total.StringFixed(2),
	}).Info("order submitted")
	return created, nil
}

// UpdateOrderStatus replaces the status of orderID. found is false, and
// nothing changes, when no such order exists.
func (s *OrderState) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus) (found bool, err error) {
	return updateOrderStatus(ctx, s.orders, s.metrics, orderID, status)
}

func updateOrderStatus(ctx context.Context, orders interfaces.IOrderRepository, metrics interfaces.IOrderMetrics, orderID string, status entities.OrderStatus) (bool, error) {
	if !status.IsValid() {
		return false, ErrInvalidOrderStatus
	}

	updated, err := orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		orderLog.WithError(err).WithField("order_id", orderID).Error("order status update failed")
		return false, err
	}
	if updated.ID == "" {
		orderLog.WithField("order_id", orderID).Debug("status update ignored: unknown order")
		return false, nil
	}

	metrics.StatusChanged(status)
	orderLog.WithFields(logrus.Fields{"order_id": orderID, "status": status}).Info("order status updated")
	return true, nil
}

type noopMetrics struct{}

func (noopMetrics) OrderSubmitted(entities.PaymentMethod, decimal.Decimal) {}
func (noopMetrics) SubmissionRejected([]string) {}
func (noopMetrics) StatusChanged(entities.OrderStatus) {}
func (noopMetrics) SessionsOpen(int) {}
