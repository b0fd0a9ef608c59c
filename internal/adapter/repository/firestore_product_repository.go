package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"collabwish/internal/domain/entity"
	"collabwish/internal/domain/repository"
	"collabwish/pkg/errors"
	"collabwish/pkg/logger"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{client: client}
}

func (r *firestoreProductRepository) List(ctx context.Context) ([]*entity.CatalogProduct, error) {
	iter := r.client.Collection("products").Documents(ctx)
	defer iter.Stop()

	products := []*entity.CatalogProduct{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list products", err)
		}

		var product entity.CatalogProduct
		if err := doc.DataTo(&product); err != nil {
			logger.Warn("Skipping unparseable product %s: %v", doc.Ref.ID, err)
			continue
		}
		products = append(products, &product)
	}

	return products, nil
}
