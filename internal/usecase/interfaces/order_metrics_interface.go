package interfaces

import (
	"smartmenu/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IOrderMetrics records ordering events for monitoring.
type IOrderMetrics interface {
	OrderSubmitted(method entities.PaymentMethod, total decimal.Decimal)
	SubmissionRejected(missing []string)
	StatusChanged(status entities.OrderStatus)
	SessionsOpen(n int)
}
