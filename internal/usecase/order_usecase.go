package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"smartmenu/internal/domain/entities"
	"smartmenu/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderFilter = errors.New("invalid order filter")
)

// OrderFilter selects which orders a board shows.
type OrderFilter string

const (
	// OrderFilterAll shows every order.
	OrderFilterAll OrderFilter = "all"
	// OrderFilterRecent is the kitchen view: orders still to be worked on.
	OrderFilterRecent OrderFilter = "recent"
	// OrderFilterActive is the pickup board: everything not yet handed over.
	OrderFilterActive OrderFilter = "active"
)

func ParseOrderFilter(raw string) (OrderFilter, error) {
	switch f := OrderFilter(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return OrderFilterAll, nil
	case OrderFilterAll, OrderFilterRecent, OrderFilterActive:
		return f, nil
	default:
		return "", ErrInvalidOrderFilter
	}
}

func (f OrderFilter) matches(s entities.OrderStatus) bool {
	switch f {
	case OrderFilterRecent:
		return s == entities.OrderStatusPending || s == entities.OrderStatusPreparing
	case OrderFilterActive:
		return s == entities.OrderStatusPending || s == entities.OrderStatusPreparing || s == entities.OrderStatusReady
	default:
		return true
	}
}

// OrderStats holds real per-status counts of the order list. Revenue sums
// the totals of every order that was not cancelled.
type OrderStats struct {
	Total    int                          `json:"total"`
	ByStatus map[entities.OrderStatus]int `json:"by_status"`
	Revenue  decimal.Decimal              `json:"revenue"`
}

// IOrderUseCase exposes the staff/admin order board.

type IOrderUseCase interface {
	List(ctx context.Context, filter OrderFilter) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	Stats(ctx context.Context) (OrderStats, error)
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	metrics interfaces.IOrderMetrics
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, metrics interfaces.IOrderMetrics) *OrderUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &OrderUseCase{repo: repo, metrics: metrics}
}

// List returns the orders matching filter, newest first.
func (u *OrderUseCase) List(ctx context.Context, filter OrderFilter) ([]entities.Order, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Order, 0, len(all))
	for _, o := range all {
		if filter.matches(o.Status) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// UpdateStatus reports ErrOrderNotFound for unknown ids; the order list is
// left untouched in that case.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	found, err := updateOrderStatus(ctx, u.repo, u.metrics, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if !found {
		return entities.Order{}, ErrOrderNotFound
	}
	return u.GetByID(ctx, id)
}

func (u *OrderUseCase) Stats(ctx context.Context) (OrderStats, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return OrderStats{}, err
	}

	stats := OrderStats{Total: len(all), ByStatus: make(map[entities.OrderStatus]int, len(entities.OrderStatuses))}
	for _, s := range entities.OrderStatuses {
		stats.ByStatus[s] = 0
	}
	for _, o := range all {
		stats.ByStatus[o.Status]++
		if o.Status != entities.OrderStatusCancelled {
			stats.Revenue = stats.Revenue.Add(o.Total)
		}
	}
	return stats, nil
}
