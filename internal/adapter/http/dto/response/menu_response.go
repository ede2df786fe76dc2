package response

import (
	"smartmenu/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Money renders amounts with two decimal places, e.g. "18.00".
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type MenuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image,omitempty"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

func FromMenuItem(it entities.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       Money(it.Price),
		Category:    it.Category,
		Image:       it.Image,
	}
}

func FromMenuItems(items []entities.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, len(items))
	for i, it := range items {
		out[i] = FromMenuItem(it)
	}
	return out
}
