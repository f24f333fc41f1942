package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/store"
)

// canonicalUUIDLen is the length of the hyphenated 8-4-4-4-12 form.
const canonicalUUIDLen = 36

// ParseCanonicalUUID reports whether term is a UUID in canonical hyphenated
// form, in any case and of any version. uuid.Parse alone also accepts the
// braced, urn and unhyphenated forms, which are lookup terms here.
func ParseCanonicalUUID(term string) (uuid.UUID, bool) {
	if len(term) != canonicalUUIDLen {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(term)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ProductResolver resolves client-supplied product identifiers. It never writes.
type ProductResolver struct {
	products store.ProductStore
	logger   *slog.Logger
}

// NewProductResolver creates a ProductResolver reading from products.
func NewProductResolver(products store.ProductStore, logger *slog.Logger) *ProductResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductResolver{
		products: products,
		logger:   logger.With(slog.String("component", "product_resolver")),
	}
}

// Resolve looks a product up by term. A canonical UUID is a surrogate-key
// lookup; anything else matches a title case-insensitively or a slug, with a
// slug match preferred. Returns a *NotFoundError when nothing matches.
func (r *ProductResolver) Resolve(ctx context.Context, term string) (*domain.Product, error) {
	if id, ok := ParseCanonicalUUID(term); ok {
		return r.lookup(ctx, term, func() (*domain.Product, error) {
			return r.products.GetByID(ctx, id)
		})
	}
	return r.lookup(ctx, term, func() (*domain.Product, error) {
		return r.products.FindByTerm(ctx, term)
	})
}

// ResolveID looks a product up by surrogate key only.
func (r *ProductResolver) ResolveID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return r.lookup(ctx, id.String(), func() (*domain.Product, error) {
		return r.products.GetByID(ctx, id)
	})
}

func (r *ProductResolver) lookup(
	ctx context.Context,
	term string,
	find func() (*domain.Product, error),
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	product, err := find()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("no product matched term", slog.String("term", term))
			return nil, &NotFoundError{Term: term, Err: err}
		}
		return nil, translateStoreError(log, "resolve product", err)
	}
	return product, nil
}
