package entity

import (
	"time"
)

// Product holds the fields embedded into a wish item. Price is a string
// because the original catalog stored it that way and the client
// renders it verbatim.
type Product struct {
	Name     string `json:"name" firestore:"name"`
	ImageURL string `json:"imageUrl" firestore:"imageUrl"`
	Price    string `json:"price" firestore:"price"`
}

// CatalogProduct is a document in the standalone products collection.
// The second API revision embeds product fields directly into wish
// items, so the catalog is read-only and largely vestigial.
type CatalogProduct struct {
	ID       string `json:"_id" firestore:"id"`
	Name     string `json:"name" firestore:"name"`
	ImageURL string `json:"imageUrl" firestore:"imageUrl"`
	Price    string `json:"price" firestore:"price"`

	CreatedAt time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}
