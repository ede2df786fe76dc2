package entities

import "github.com/shopspring/decimal"

// MaxItemQuantity caps the quantity of a single cart line.
const MaxItemQuantity = 99

// Cart is the pre-submission list of order items of one session.
//
// Invariants:
//   - at most one line per menu item id
//   - every line has 1 <= quantity <= MaxItemQuantity
//
// Cart is not safe for concurrent use; the owning OrderState serializes access.
type Cart struct {
	items []OrderItem
}

// Add merges quantity into the line for item.ID, or appends a new line.
// Callers must pass quantity >= 1.
func (c *Cart) Add(item MenuItem, quantity int) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, OrderItem{MenuItem: item, Quantity: quantity})
}

// Remove deletes the line for itemID. Unknown ids are ignored.
func (c *Cart) Remove(itemID string) {
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the quantity of the line for itemID exactly.
// A quantity <= 0 removes the line. Unknown ids are ignored.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []OrderItem {
	return append([]OrderItem{}, c.items...)
}

// Quantity returns the quantity of the line for itemID, or 0.
func (c *Cart) Quantity(itemID string) int {
	for _, it := range c.items {
		if it.ID == itemID {
			return it.Quantity
		}
	}
	return 0
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Total is recomputed on every call.
func (c *Cart) Total() decimal.Decimal {
	return SumItems(c.items)
}

func (c *Cart) Clear() {
	c.items = nil
}
