package service

import (
	"context"
	"database/sql"

	"github.com/phrazzld/shop-api/internal/store"
)

// ProductRepository is the product store as the service layer sees it: the
// plain store operations plus a unit of work.
type ProductRepository interface {
	store.ProductStore

	// InTransaction runs fn against a transaction-bound store. The
	// transaction commits when fn returns nil and rolls back otherwise; it
	// is released on every path.
	InTransaction(ctx context.Context, fn func(ctx context.Context, products store.ProductStore) error) error
}

// NewProductRepositoryAdapter creates a new adapter that allows a
// store.ProductStore to be used where a ProductRepository is expected.
func NewProductRepositoryAdapter(productStore store.ProductStore, db store.TxBeginner) ProductRepository {
	return &productRepositoryAdapter{
		ProductStore: productStore,
		db:           db,
	}
}

// productRepositoryAdapter adapts a store.ProductStore to the ProductRepository interface
type productRepositoryAdapter struct {
	store.ProductStore
	db store.TxBeginner
}

// InTransaction implements ProductRepository.InTransaction
func (a *productRepositoryAdapter) InTransaction(
	ctx context.Context,
	fn func(ctx context.Context, products store.ProductStore) error,
) error {
	return store.RunInTransaction(ctx, a.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, a.ProductStore.WithTx(tx))
	})
}
