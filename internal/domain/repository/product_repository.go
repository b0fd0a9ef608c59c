package repository

import (
	"context"

	"collabwish/internal/domain/entity"
)

// ProductRepository reads the standalone catalog collection. Items
// embed their product fields directly, so the catalog is read-only.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.CatalogProduct, error)
}
