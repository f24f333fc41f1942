package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/platform/logger"
	"github.com/phrazzld/shop-api/internal/store"
)

const productSelect = `
	SELECT p.id, p.title, p.price, p.description, p.slug, p.stock, p.sizes, p.gender, p.tags,
	       p.created_at, p.updated_at,
	       u.id, u.email, u.full_name, u.is_active, u.roles
	FROM products p
	LEFT JOIN users u ON u.id = p.user_id
`

// PostgresProductStore implements the store.ProductStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProductStore creates a new PostgreSQL implementation of the ProductStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresProductStore(db store.DBTX, logger *slog.Logger) *PostgresProductStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

// Ensure PostgresProductStore implements store.ProductStore interface
var _ store.ProductStore = (*PostgresProductStore)(nil)

// WithTx implements store.ProductStore.WithTx
func (s *PostgresProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return &PostgresProductStore{db: tx, logger: s.logger}
}

// Create implements store.ProductStore.Create
// The product row and its images are written with separate statements; run
// it inside store.RunInTransaction for atomicity.
func (s *PostgresProductStore) Create(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := product.Validate(); err != nil {
		log.Warn("product validation failed during create",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID.String()))
		return err
	}

	query := `
		INSERT INTO products
			(id, title, price, description, slug, stock, sizes, gender, tags, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(ctx, query,
		product.ID,
		product.Title,
		product.Price,
		product.Description,
		product.Slug,
		product.Stock,
		nonNil(product.Sizes),
		string(product.Gender),
		nonNil(product.Tags),
		ownerID(product),
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create product",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID.String()))
		return MapError(err)
	}

	if err := s.insertNewImages(ctx, product); err != nil {
		return err
	}

	log.Info("product created successfully",
		slog.String("product_id", product.ID.String()),
		slog.Int("images", len(product.Images)))
	return nil
}

// GetByID implements store.ProductStore.GetByID
func (s *PostgresProductStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := productSelect + `WHERE p.id = $1`
	return s.getOne(ctx, slog.String("product_id", id.String()), query, id)
}

// FindByTerm implements store.ProductStore.FindByTerm
func (s *PostgresProductStore) FindByTerm(ctx context.Context, term string) (*domain.Product, error) {
	query := productSelect + `
		WHERE UPPER(p.title) = UPPER($1) OR LOWER(p.slug) = LOWER($1)
		ORDER BY CASE WHEN LOWER(p.slug) = LOWER($1) THEN 0 ELSE 1 END, p.seq
		LIMIT 1
	`
	return s.getOne(ctx, slog.String("term", term), query, term)
}

func (s *PostgresProductStore) getOne(
	ctx context.Context,
	key slog.Attr,
	query string,
	args ...any,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := scanProduct(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("product not found", key)
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to get product", slog.String("error", err.Error()), key)
		return nil, MapError(err)
	}

	if err := s.loadImages(ctx, []*domain.Product{product}); err != nil {
		return nil, err
	}
	return product, nil
}

// List implements store.ProductStore.List
func (s *PostgresProductStore) List(ctx context.Context, page store.Page) ([]*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := productSelect + `ORDER BY p.seq LIMIT $1 OFFSET $2`
	rows, err := s.db.QueryContext(ctx, query, page.Limit, page.Offset)
	if err != nil {
		log.Error("failed to list products",
			slog.String("error", err.Error()),
			slog.Int("limit", page.Limit),
			slog.Int("offset", page.Offset))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Error("failed to scan product row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating product rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if err := s.loadImages(ctx, products); err != nil {
		return nil, err
	}

	log.Debug("products listed",
		slog.Int("count", len(products)),
		slog.Int("limit", page.Limit),
		slog.Int("offset", page.Offset))
	return products, nil
}

// Save implements store.ProductStore.Save
func (s *PostgresProductStore) Save(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := product.Validate(); err != nil {
		log.Warn("product validation failed during save",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID.String()))
		return err
	}
	product.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE products
		SET title = $2, price = $3, description = $4, slug = $5, stock = $6,
		    sizes = $7, gender = $8, tags = $9, user_id = $10, updated_at = $11
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		product.ID,
		product.Title,
		product.Price,
		product.Description,
		product.Slug,
		product.Stock,
		nonNil(product.Sizes),
		string(product.Gender),
		nonNil(product.Tags),
		ownerID(product),
		product.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to save product",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrProductNotFound); err != nil {
		return err
	}

	if err := s.insertNewImages(ctx, product); err != nil {
		return err
	}

	log.Info("product saved successfully", slog.String("product_id", product.ID.String()))
	return nil
}

// DeleteImages implements store.ProductStore.DeleteImages
func (s *PostgresProductStore) DeleteImages(ctx context.Context, productID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = $1`, productID)
	if err != nil {
		log.Error("failed to delete product images",
			slog.String("error", err.Error()),
			slog.String("product_id", productID.String()))
		return MapError(err)
	}

	n, _ := result.RowsAffected()
	log.Debug("product images deleted",
		slog.String("product_id", productID.String()),
		slog.Int64("count", n))
	return nil
}

// Delete implements store.ProductStore.Delete
func (s *PostgresProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete product",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrProductNotFound); err != nil {
		return err
	}

	log.Info("product deleted successfully", slog.String("product_id", id.String()))
	return nil
}

// DeleteAll implements store.ProductStore.DeleteAll
func (s *PostgresProductStore) DeleteAll(ctx context.Context) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM products`)
	if err != nil {
		log.Error("failed to delete all products", slog.String("error", err.Error()))
		return 0, MapError(err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, MapError(err)
	}

	log.Info("all products deleted", slog.Int64("count", n))
	return n, nil
}

// insertNewImages writes every image whose ID is zero, using its index in
// product.Images as the position, and records the generated IDs.
func (s *PostgresProductStore) insertNewImages(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO product_images (url, position, product_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	for i := range product.Images {
		img := &product.Images[i]
		if img.ID != 0 {
			continue
		}
		img.ProductID = product.ID
		if err := s.db.QueryRowContext(ctx, query, img.URL, i, product.ID).Scan(&img.ID); err != nil {
			log.Error("failed to insert product image",
				slog.String("error", err.Error()),
				slog.String("product_id", product.ID.String()),
				slog.Int("position", i))
			return MapError(err)
		}
	}
	return nil
}

// loadImages fills Images for every product with one query, ordered by
// position.
func (s *PostgresProductStore) loadImages(ctx context.Context, products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	ids := make([]string, len(products))
	byID := make(map[uuid.UUID]*domain.Product, len(products))
	for i, p := range products {
		ids[i] = p.ID.String()
		p.Images = []domain.ProductImage{}
		byID[p.ID] = p
	}

	query := `
		SELECT id, product_id, url
		FROM product_images
		WHERE product_id = ANY($1::uuid[])
		ORDER BY product_id, position, id
	`
	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		log.Error("failed to load product images", slog.String("error", err.Error()))
		return MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL); err != nil {
			log.Error("failed to scan product image", slog.String("error", err.Error()))
			return MapError(err)
		}
		if p, ok := byID[img.ProductID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating product image rows", slog.String("error", err.Error()))
		return MapError(err)
	}
	return nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		p        domain.Product
		gender   string
		owner    uuid.NullUUID
		email    sql.NullString
		fullName sql.NullString
		isActive sql.NullBool
		roles    []string
	)
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Price,
		&p.Description,
		&p.Slug,
		&p.Stock,
		textArray(&p.Sizes),
		&gender,
		textArray(&p.Tags),
		&p.CreatedAt,
		&p.UpdatedAt,
		&owner,
		&email,
		&fullName,
		&isActive,
		textArray(&roles),
	)
	if err != nil {
		return nil, err
	}

	p.Gender = domain.Gender(gender)
	if owner.Valid {
		p.Owner = &domain.User{
			ID:       owner.UUID,
			Email:    email.String,
			FullName: fullName.String,
			IsActive: isActive.Bool,
			Roles:    stringsToRoles(roles),
		}
	}
	return &p, nil
}

func ownerID(p *domain.Product) any {
	if p.Owner == nil {
		return nil
	}
	return p.Owner.ID
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
