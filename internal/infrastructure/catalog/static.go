package catalog

import (
	"context"

	"smartmenu/internal/domain/entities"
	"smartmenu/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// StaticProvider serves the built-in house menu.
type StaticProvider struct {
	items []entities.MenuItem
}

var _ interfaces.ICatalogProvider = (*StaticProvider)(nil)

// NewStaticProvider returns the built-in menu, or items when given.
func NewStaticProvider(items ...entities.MenuItem) *StaticProvider {
	if len(items) == 0 {
		items = DefaultMenu()
	}
	return &StaticProvider{items: items}
}

func (p *StaticProvider) LoadMenu(_ context.Context) ([]entities.MenuItem, error) {
	return append([]entities.MenuItem{}, p.items...), nil
}

// DefaultMenu is the house menu grouped as LANCHES, BEBIDAS and ALMOÇO.
func DefaultMenu() []entities.MenuItem {
	return []entities.MenuItem{
		{
			ID:          "hamburguer-artesanal",
			Name:        "HAMBURGUER ARTESANAL",
			Description: "Hamburguer artesanal: Carne, Queijo Chedar, Alface, Pão, Tomate",
			Price:       decimal.RequireFromString("24.50"),
			Category:    "LANCHES",
			Image:       "/assets/hamburguer-artesanal.jpg",
		},
		{
			ID:          "x-bacon",
			Name:        "X-BACON",
			Description: "Hamburguer com bacon, queijo, alface e tomate",
			Price:       decimal.RequireFromString("18.00"),
			Category:    "LANCHES",
		},
		{
			ID:          "x-tudo",
			Name:        "X-TUDO",
			Description: "Hamburguer completo com tudo que temos de melhor",
			Price:       decimal.RequireFromString("22.00"),
			Category:    "LANCHES",
		},
		{
			ID:          "coca-cola",
			Name:        "COCA-COLA",
			Description: "Refrigerante Coca-Cola lata 350ml",
			Price:       decimal.RequireFromString("5.00"),
			Category:    "BEBIDAS",
		},
		{
			ID:          "suco-laranja",
			Name:        "SUCO DE LARANJA",
			Description: "Suco natural de laranja 300ml",
			Price:       decimal.RequireFromString("7.50"),
			Category:    "BEBIDAS",
		},
		{
			ID:          "prato-feito",
			Name:        "PRATO FEITO",
			Description: "Arroz, feijão, batata frita, salada e carne",
			Price:       decimal.RequireFromString("16.00"),
			Category:    "ALMOÇO",
		},
		{
			ID:          "feijoada",
			Name:        "FEIJOADA",
			Description: "Feijoada completa com acompanhamentos",
			Price:       decimal.RequireFromString("25.00"),
			Category:    "ALMOÇO",
		},
	}
}
