package metrics

import (
	"testing"

	"smartmenu/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

func TestOrderMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOrderMetrics(reg)

	m.OrderSubmitted(entities.PaymentMethodPIX, decimal.RequireFromString("18.00"))
	m.OrderSubmitted(entities.PaymentMethodPIX, decimal.RequireFromString("7.50"))
	m.OrderSubmitted(entities.PaymentMethodCard, decimal.RequireFromString("5"))
	m.OrderSubmitted(entities.PaymentMethodCard, decimal.RequireFromString("-1"))
	m.SubmissionRejected([]string{"customer", "items"})
	m.SubmissionRejected([]string{"items"})
	m.StatusChanged(entities.OrderStatusReady)
	m.SessionsOpen(3)

	if got := testutil.ToFloat64(m.submitted.WithLabelValues("PIX")); got != 2 {
		t.Fatalf("expected 2 PIX orders, got %v", got)
	}
	if got := testutil.ToFloat64(m.revenue.WithLabelValues("PIX")); got != 25.5 {
		t.Fatalf("expected 25.5 PIX amount, got %v", got)
	}
	if got := testutil.ToFloat64(m.revenue.WithLabelValues("CARD")); got != 5 {
		t.Fatalf("expected negative totals to be ignored, got %v", got)
	}
	if got := testutil.ToFloat64(m.rejected.WithLabelValues("items")); got != 2 {
		t.Fatalf("expected 2 items rejections, got %v", got)
	}
	if got := testutil.ToFloat64(m.statusChanges.WithLabelValues("ready")); got != 1 {
		t.Fatalf("expected 1 ready change, got %v", got)
	}
	if got := testutil.ToFloat64(m.sessions); got != 3 {
		t.Fatalf("expected 3 sessions, got %v", got)
	}

	if n, err := testutil.GatherAndCount(reg); err != nil || n == 0 {
		t.Fatalf("expected gathered metrics, n=%d err=%v", n, err)
	}
}
