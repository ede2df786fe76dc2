package metrics

import (
	"smartmenu/internal/domain/entities"
	"smartmenu/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const namespace = "smartmenu"

// OrderMetrics exports ordering events as Prometheus metrics.
type OrderMetrics struct {
	submitted     *prometheus.CounterVec
	revenue       *prometheus.CounterVec
	rejected      *prometheus.CounterVec
	statusChanges *prometheus.CounterVec
	sessions      prometheus.Gauge
}

var _ interfaces.IOrderMetrics = (*OrderMetrics)(nil)

// NewOrderMetrics creates the collectors and registers them with reg.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	m := &OrderMetrics{
		submitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "submitted_total",
			Help:      "Orders submitted, by payment method.",
		}, []string{"payment_method"}),
		revenue: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "amount_total",
			Help:      "Sum of submitted order totals, by payment method.",
		}, []string{"payment_method"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "rejected_total",
			Help:      "Submissions rejected, by missing precondition.",
		}, []string{"missing"}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Order status updates, by new status.",
		}, []string{"status"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "open",
			Help:      "Customer sessions currently open.",
		}),
	}
	reg.MustRegister(m.submitted, m.revenue, m.rejected, m.statusChanges, m.sessions)
	return m
}

func (m *OrderMetrics) OrderSubmitted(method entities.PaymentMethod, total decimal.Decimal) {
	m.submitted.WithLabelValues(string(method)).Inc()
	if total.IsPositive() {
		m.revenue.WithLabelValues(string(method)).Add(total.InexactFloat64())
	}
}

func (m *OrderMetrics) SubmissionRejected(missing []string) {
	for _, reason := range missing {
		m.rejected.WithLabelValues(reason).Inc()
	}
}

func (m *OrderMetrics) StatusChanged(status entities.OrderStatus) {
	m.statusChanges.WithLabelValues(string(status)).Inc()
}

func (m *OrderMetrics) SessionsOpen(n int) {
	m.sessions.Set(float64(n))
}
