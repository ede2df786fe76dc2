package interfaces

import (
	"context"
	"smartmenu/internal/domain/entities"
)

// IOrderRepository abstracts the shared list of submitted orders.
//
// The list is append-only: orders are never deleted and only their status
// changes after creation. Implementations must return copies so callers
// cannot mutate stored orders.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	// UpdateStatus returns the updated order, or a zero Order when id is unknown.
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
