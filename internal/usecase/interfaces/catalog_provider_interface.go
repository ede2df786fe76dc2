package interfaces

import (
	"context"
	"smartmenu/internal/domain/entities"
)

// ICatalogProvider supplies the menu at startup.
//
// The returned slice is in display order. It is read once; the catalog is
// immutable for the lifetime of the process.
type ICatalogProvider interface {
	LoadMenu(ctx context.Context) ([]entities.MenuItem, error)
}
