package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func menuItem(id string, price string) MenuItem {
	return MenuItem{ID: id, Name: id, Price: decimal.RequireFromString(price), Category: "LANCHES"}
}

func TestCart_AddMergesSameID(t *testing.T) {
	var c Cart
	a := menuItem("a", "10")
	c.Add(a, 1)
	c.Add(a, 1)
	c.Add(a, 3)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}
	if !c.Total().Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected total 50, got %s", c.Total())
	}
}

func TestCart_AddKeepsInsertionOrder(t *testing.T) {
	var c Cart
	c.Add(menuItem("b", "5"), 1)
	c.Add(menuItem("a", "7.5"), 2)
	c.Add(menuItem("b", "5"), 1)

	items := c.Items()
	if len(items) != 2 || items[0].ID != "b" || items[1].ID != "a" {
		t.Fatalf("unexpected lines: %+v", items)
	}
	if !c.Total().Equal(decimal.RequireFromString("25")) {
		t.Fatalf("expected total 25, got %s", c.Total())
	}
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("sets exactly", func(t *testing.T) {
		var c Cart
		c.Add(menuItem("a", "10"), 2)
		c.SetQuantity("a", 7)
		if q := c.Items()[0].Quantity; q != 7 {
			t.Fatalf("expected 7, got %d", q)
		}
	})

	for _, q := range []int{0, -5} {
		q := q
		t.Run("non-positive removes", func(t *testing.T) {
			var c Cart
			c.Add(menuItem("a", "10"), 2)
			c.Add(menuItem("b", "1"), 1)
			c.SetQuantity("a", q)
			items := c.Items()
			if len(items) != 1 || items[0].ID != "b" {
				t.Fatalf("expected only b, got %+v", items)
			}
		})
	}

	t.Run("unknown id is ignored", func(t *testing.T) {
		var c Cart
		c.Add(menuItem("a", "10"), 2)
		c.SetQuantity("zzz", 4)
		if len(c.Items()) != 1 || c.Items()[0].Quantity != 2 {
			t.Fatalf("cart changed: %+v", c.Items())
		}
	})
}

func TestCart_RemoveAndClear(t *testing.T) {
	var c Cart
	c.Add(menuItem("a", "10"), 1)
	c.Add(menuItem("b", "2"), 1)
	c.Remove("missing")
	if len(c.Items()) != 2 {
		t.Fatalf("remove of missing id changed cart")
	}
	c.Remove("a")
	if len(c.Items()) != 1 || c.Items()[0].ID != "b" {
		t.Fatalf("unexpected lines: %+v", c.Items())
	}
	c.Clear()
	if !c.IsEmpty() || !c.Total().IsZero() {
		t.Fatalf("expected empty cart with zero total")
	}
}

func TestCart_Quantity(t *testing.T) {
	var c Cart
	c.Add(menuItem("a", "10"), 2)
	c.Add(menuItem("a", "10"), 3)
	if got := c.Quantity("a"); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := c.Quantity("zzz"); got != 0 {
		t.Fatalf("expected 0 for unknown id, got %d", got)
	}
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	var c Cart
	c.Add(menuItem("a", "10"), 1)
	items := c.Items()
	items[0].Quantity = 99
	if c.Items()[0].Quantity != 1 {
		t.Fatalf("cart mutated through returned slice")
	}
}
