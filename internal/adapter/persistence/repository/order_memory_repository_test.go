package repository

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"smartmenu/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func sampleOrder(id string) entities.Order {
	return entities.Order{
		ID:       id,
		Customer: entities.Customer{Name: "Maria"},
		Items: []entities.OrderItem{{
			MenuItem: entities.MenuItem{ID: "x-bacon", Name: "X-BACON", Price: decimal.RequireFromString("18.00"), Category: "LANCHES"},
			Quantity: 1,
		}},
		PaymentMethod: entities.PaymentMethodPIX,
		Status:        entities.OrderStatusPending,
		CreatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Total:         decimal.RequireFromString("18.00"),
	}
}

func TestOrderMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewOrderMemoryRepository()

	created, err := r.Create(ctx, sampleOrder("o-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "o-1" {
		t.Fatalf("unexpected order: %+v", created)
	}

	if _, err := r.Create(ctx, sampleOrder("o-1")); !errors.Is(err, ErrOrderAlreadyExists) {
		t.Fatalf("expected ErrOrderAlreadyExists, got %v", err)
	}

	got, err := r.GetByID(ctx, "o-1")
	if err != nil || got.ID != "o-1" {
		t.Fatalf("unexpected get result: %+v err=%v", got, err)
	}

	missing, err := r.GetByID(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero order, got %+v err=%v", missing, err)
	}
}

func TestOrderMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewOrderMemoryRepository()
	o := sampleOrder("o-1")
	if _, err := r.Create(ctx, o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o.Items[0].Quantity = 50
	list, _ := r.List(ctx)
	list[0].Items[0].Quantity = 99
	list[0].Status = entities.OrderStatusCancelled

	got, _ := r.GetByID(ctx, "o-1")
	if got.Items[0].Quantity != 1 || got.Status != entities.OrderStatusPending {
		t.Fatalf("stored order was mutated: %+v", got)
	}
}

func TestOrderMemoryRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	r := NewOrderMemoryRepository()
	_, _ = r.Create(ctx, sampleOrder("o-1"))
	_, _ = r.Create(ctx, sampleOrder("o-2"))

	t.Run("known id", func(t *testing.T) {
		updated, err := r.UpdateStatus(ctx, "o-2", entities.OrderStatusReady)
		if err != nil || updated.Status != entities.OrderStatusReady {
			t.Fatalf("unexpected update: %+v err=%v", updated, err)
		}
	})

	t.Run("unknown id leaves list equal", func(t *testing.T) {
		before, _ := r.List(ctx)
		updated, err := r.UpdateStatus(ctx, "ghost", entities.OrderStatusCompleted)
		if err != nil || updated.ID != "" {
			t.Fatalf("expected zero order, got %+v err=%v", updated, err)
		}
		after, _ := r.List(ctx)
		if !reflect.DeepEqual(before, after) {
			t.Fatalf("list changed: before=%+v after=%+v", before, after)
		}
	})

	t.Run("list keeps submission order", func(t *testing.T) {
		list, _ := r.List(ctx)
		if len(list) != 2 || list[0].ID != "o-1" || list[1].ID != "o-2" {
			t.Fatalf("unexpected order: %+v", list)
		}
	})
}

func TestOrderMemoryRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	r := NewOrderMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			o := sampleOrder(time.Duration(i).String())
			if _, err := r.Create(ctx, o); err != nil {
				t.Errorf("create %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	list, _ := r.List(ctx)
	if len(list) != 50 {
		t.Fatalf("expected 50 orders, got %d", len(list))
	}
}
