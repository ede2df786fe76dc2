package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"smartmenu/internal/domain/entities"
	"smartmenu/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidCatalog   = errors.New("invalid catalog")
)

// ICatalogUseCase exposes read-only menu browsing.

type ICatalogUseCase interface {
	ListItems(ctx context.Context, category string) ([]entities.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	GetItem(ctx context.Context, id string) (entities.MenuItem, error)
}

// CatalogUseCase serves a menu loaded once at construction.
type CatalogUseCase struct {
	items      []entities.MenuItem
	byID       map[string]entities.MenuItem
	categories []string
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

// NewCatalogUseCase loads and validates the menu from provider.
func NewCatalogUseCase(ctx context.Context, provider interfaces.ICatalogProvider) (*CatalogUseCase, error) {
	log := logrus.WithFields(logrus.Fields{"component": "catalog", "layer": "usecase"})

	items, err := provider.LoadMenu(ctx)
	if err != nil {
		log.WithError(err).Error("menu load failed")
		return nil, err
	}

	u := &CatalogUseCase{
		items: make([]entities.MenuItem, 0, len(items)),
		byID:  make(map[string]entities.MenuItem, len(items)),
	}
	seenCategory := map[string]bool{}
	for _, it := range items {
		if err := validateMenuItem(it); err != nil {
			return nil, err
		}
		if _, dup := u.byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate item id %q", ErrInvalidCatalog, it.ID)
		}
		u.items = append(u.items, it)
		u.byID[it.ID] = it
		if !seenCategory[it.Category] {
			seenCategory[it.Category] = true
			u.categories = append(u.categories, it.Category)
		}
	}

	log.WithFields(logrus.Fields{"items": len(u.items), "categories": len(u.categories)}).Info("menu loaded")
	return u, nil
}

func validateMenuItem(it entities.MenuItem) error {
	switch {
	case strings.TrimSpace(it.ID) == "":
		return fmt.Errorf("%w: item with empty id", ErrInvalidCatalog)
	case strings.TrimSpace(it.Category) == "":
		return fmt.Errorf("%w: item %q has no category", ErrInvalidCatalog, it.ID)
	case it.Price.IsNegative():
		return fmt.Errorf("%w: item %q has negative price", ErrInvalidCatalog, it.ID)
	}
	return nil
}

// ListItems returns the menu in catalog order. A non-empty category keeps
// only the items of that category (case-insensitive).
func (u *CatalogUseCase) ListItems(_ context.Context, category string) ([]entities.MenuItem, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return append([]entities.MenuItem{}, u.items...), nil
	}

	out := []entities.MenuItem{}
	for _, it := range u.items {
		if strings.EqualFold(it.Category, category) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (u *CatalogUseCase) Categories(_ context.Context) ([]string, error) {
	return append([]string{}, u.categories...), nil
}

func (u *CatalogUseCase) GetItem(_ context.Context, id string) (entities.MenuItem, error) {
	it, ok := u.byID[strings.TrimSpace(id)]
	if !ok {
		return entities.MenuItem{}, ErrMenuItemNotFound
	}
	return it, nil
}
