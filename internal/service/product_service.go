package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/store"
)

// ProductInput is the payload of a product creation. A nil Images list is
// treated as empty.
type ProductInput struct {
	Details domain.ProductDetails
	Images  []string
}

// ProductPatch is the payload of a product update. Only supplied fields are
// changed. A non-nil Images pointer replaces the whole image set, even when
// it points at an empty list.
type ProductPatch struct {
	Details domain.ProductDetails
	Images  *[]string
}

// ProductService provides product catalog operations
type ProductService interface {
	// Create stores a new product owned by owner together with its images.
	Create(ctx context.Context, input ProductInput, owner *domain.User) (*domain.PlainProduct, error)

	// List returns one page of products in insertion order.
	List(ctx context.Context, page store.Page) ([]domain.PlainProduct, error)

	// Get resolves term to a product with its image records.
	Get(ctx context.Context, term string) (*domain.Product, error)

	// GetPlain resolves term to the client-facing shape of a product.
	GetPlain(ctx context.Context, term string) (*domain.PlainProduct, error)

	// Update applies patch to the product identified by id and records owner
	// as its last modifier. Returns the product as committed.
	Update(ctx context.Context, id uuid.UUID, patch ProductPatch, owner *domain.User) (*domain.PlainProduct, error)

	// Remove deletes a product and its images and returns its last known state.
	Remove(ctx context.Context, id uuid.UUID) (*domain.PlainProduct, error)

	// DeleteAll removes every product and reports how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}

// productServiceImpl implements the ProductService interface
type productServiceImpl struct {
	products ProductRepository
	resolver *ProductResolver
	logger   *slog.Logger
	now      func() time.Time
}

// NewProductService creates a new ProductService
// It returns an error if any of the required dependencies are nil.
func NewProductService(products ProductRepository, logger *slog.Logger) (ProductService, error) {
	if products == nil {
		return nil, domain.NewValidationError("products", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &productServiceImpl{
		products: products,
		resolver: NewProductResolver(products, logger),
		logger:   logger.With(slog.String("component", "product_service")),
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// Create implements ProductService.Create
func (s *productServiceImpl) Create(
	ctx context.Context,
	input ProductInput,
	owner *domain.User,
) (*domain.PlainProduct, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := domain.NewProduct(input.Details, owner)
	if err != nil {
		log.Debug("invalid product input", slog.String("error", err.Error()))
		return nil, err
	}
	product.ReplaceImages(input.Images)
	if err := product.Validate(); err != nil {
		return nil, err
	}

	err = s.products.InTransaction(ctx, func(ctx context.Context, tx store.ProductStore) error {
		return tx.Create(ctx, product)
	})
	if err != nil {
		return nil, translateStoreError(log, "create product", err)
	}

	log.Info("product created",
		slog.String("product_id", product.ID.String()),
		slog.String("slug", product.Slug),
		slog.Int("image_count", len(product.Images)))

	plain := product.Plain()
	return &plain, nil
}

// List implements ProductService.List
func (s *productServiceImpl) List(ctx context.Context, page store.Page) ([]domain.PlainProduct, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	products, err := s.products.List(ctx, page)
	if err != nil {
		return nil, translateStoreError(log, "list products", err)
	}

	plain := make([]domain.PlainProduct, 0, len(products))
	for _, p := range products {
		plain = append(plain, p.Plain())
	}
	return plain, nil
}

// Get implements ProductService.Get
func (s *productServiceImpl) Get(ctx context.Context, term string) (*domain.Product, error) {
	return s.resolver.Resolve(ctx, term)
}

// GetPlain implements ProductService.GetPlain
func (s *productServiceImpl) GetPlain(ctx context.Context, term string) (*domain.PlainProduct, error) {
	product, err := s.resolver.Resolve(ctx, term)
	if err != nil {
		return nil, err
	}
	plain := product.Plain()
	return &plain, nil
}

// Update implements ProductService.Update
//
// The scalar fields are merged onto the stored product before any write.
// Image replacement, the owner refresh and the save then run in one
// transaction, so a failure leaves the stored image set as it was. The
// result is re-read after commit.
func (s *productServiceImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	patch ProductPatch,
	owner *domain.User,
) (*domain.PlainProduct, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("product_id", id.String()))

	candidate, err := s.resolver.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}
	candidate.Apply(patch.Details)

	err = s.products.InTransaction(ctx, func(ctx context.Context, tx store.ProductStore) error {
		if patch.Images != nil {
			if err := tx.DeleteImages(ctx, candidate.ID); err != nil {
				return err
			}
			candidate.ReplaceImages(*patch.Images)
		}

		candidate.Owner = owner
		candidate.UpdatedAt = s.now()

		if err := candidate.Validate(); err != nil {
			return err
		}
		return tx.Save(ctx, candidate)
	})
	if err != nil {
		return nil, translateStoreError(log, "update product", err)
	}

	log.Info("product updated", slog.Bool("images_replaced", patch.Images != nil))

	return s.GetPlain(ctx, id.String())
}

// Remove implements ProductService.Remove
func (s *productServiceImpl) Remove(ctx context.Context, id uuid.UUID) (*domain.PlainProduct, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := s.resolver.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.products.Delete(ctx, product.ID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, &NotFoundError{Term: id.String(), Err: err}
		}
		return nil, translateStoreError(log, "remove product", err)
	}

	log.Info("product removed", slog.String("product_id", id.String()))

	plain := product.Plain()
	return &plain, nil
}

// DeleteAll implements ProductService.DeleteAll
func (s *productServiceImpl) DeleteAll(ctx context.Context) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	n, err := s.products.DeleteAll(ctx)
	if err != nil {
		return 0, translateStoreError(log, "delete all products", err)
	}

	log.Warn("all products deleted", slog.Int64("count", n))
	return n, nil
}
