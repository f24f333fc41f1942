package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
)

// ProductStore defines the interface for product and product image persistence.
// Images are owned by their product: they are written with it and removed
// with it.
type ProductStore interface {
	// Create inserts a new product together with its images, in order.
	// Returns a *DBError wrapping ErrDuplicate if the title or slug is taken.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product and its images by surrogate key.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// FindByTerm retrieves the product whose title matches term
	// case-insensitively or whose slug matches it. A slug match wins over a
	// title match; remaining ties go to the earliest inserted product.
	// Returns ErrProductNotFound if nothing matches.
	FindByTerm(ctx context.Context, term string) (*domain.Product, error)

	// List returns one page of products in insertion order, images included.
	List(ctx context.Context, page Page) ([]*domain.Product, error)

	// Save writes the scalar fields and owner of an existing product and
	// inserts every image whose ID is zero. Existing image rows are left
	// untouched; call DeleteImages first to replace the set.
	// Returns ErrProductNotFound if the product does not exist.
	Save(ctx context.Context, product *domain.Product) error

	// DeleteImages removes every image of the product.
	DeleteImages(ctx context.Context, productID uuid.UUID) error

	// Delete removes a product; its images go with it.
	// Returns ErrProductNotFound if the product does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every product and image and reports how many
	// products were removed.
	DeleteAll(ctx context.Context) (int64, error)

	// WithTx returns a new ProductStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	WithTx(tx *sql.Tx) ProductStore
}
