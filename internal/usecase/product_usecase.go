package usecase

import (
	"context"

	"collabwish/internal/domain/entity"
	"collabwish/internal/domain/repository"
)

// ProductUseCase serves the standalone catalog collection. Wish items
// embed their product fields directly since the second API revision,
// so this is read-only and kept for the legacy products endpoint.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

func (uc *ProductUseCase) ListProducts(ctx context.Context) ([]*entity.CatalogProduct, error) {
	return uc.productRepo.List(ctx)
}
