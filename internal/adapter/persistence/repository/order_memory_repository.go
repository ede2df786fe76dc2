package repository

import (
	"context"
	"errors"
	"sync"

	"smartmenu/internal/domain/entities"
	"smartmenu/internal/usecase/interfaces"
)

var ErrOrderAlreadyExists = errors.New("order already exists")

// OrderMemoryRepository keeps submitted orders in process memory.
//
// Orders are kept in submission order. Nothing survives a restart.
type OrderMemoryRepository struct {
	mu     sync.RWMutex
	orders []entities.Order
	index  map[string]int
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{index: map[string]int{}}
}

func (r *OrderMemoryRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[o.ID]; ok {
		return entities.Order{}, ErrOrderAlreadyExists
	}
	stored := o.Clone()
	r.index[o.ID] = len(r.orders)
	r.orders = append(r.orders, stored)
	return stored.Clone(), nil
}

// GetByID returns a zero Order when id is unknown.
func (r *OrderMemoryRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return entities.Order{}, nil
	}
	return r.orders[i].Clone(), nil
}

func (r *OrderMemoryRepository) List(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = o.Clone()
	}
	return out, nil
}

func (r *OrderMemoryRepository) UpdateStatus(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return entities.Order{}, nil
	}
	r.orders[i].Status = status
	return r.orders[i].Clone(), nil
}
