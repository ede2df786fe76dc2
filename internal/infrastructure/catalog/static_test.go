package catalog

import (
	"context"
	"testing"

	"smartmenu/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestStaticProvider_DefaultMenu(t *testing.T) {
	items, err := NewStaticProvider().LoadMenu(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 7 {
		t.Fatalf("expected 7 items, got %d", len(items))
	}

	seen := map[string]bool{}
	for _, it := range items {
		if seen[it.ID] {
			t.Fatalf("duplicate id %s", it.ID)
		}
		seen[it.ID] = true
		if it.Price.IsNegative() || it.Category == "" {
			t.Fatalf("invalid item %+v", it)
		}
	}
}

func TestStaticProvider_CustomItemsAreCopied(t *testing.T) {
	p := NewStaticProvider(entities.MenuItem{ID: "a", Price: decimal.NewFromInt(1), Category: "C"})
	items, _ := p.LoadMenu(context.Background())
	items[0].ID = "mutated"

	again, _ := p.LoadMenu(context.Background())
	if again[0].ID != "a" {
		t.Fatalf("provider state mutated")
	}
}
