package entities

import "github.com/shopspring/decimal"

// MenuItem is a purchasable catalog entry.
//
// Catalog notes:
//   - Items are loaded once at startup and never mutated afterwards.
//   - Category is a free-form tag (e.g. LANCHES, BEBIDAS); grouping keeps the
//     order in which categories first appear in the catalog.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image,omitempty"`
}
