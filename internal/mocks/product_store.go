package mocks

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/store"
)

type productRow struct {
	seq     int64
	product domain.Product
}

// ProductStore is an in-memory store.ProductStore with a unit of work. Every
// value crossing its boundary is copied so callers cannot mutate stored rows.
type ProductStore struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]*productRow
	seq     int64
	imageID int64

	// Failure injection. A non-nil error is returned by the matching method
	// before it touches any state.
	CreateErr       error
	GetErr          error
	ListErr         error
	SaveErr         error
	DeleteImagesErr error
	DeleteErr       error
	DeleteAllErr    error

	// Transaction bookkeeping.
	Commits   int
	Rollbacks int

	// Calls records the names of the store methods invoked, in order.
	Calls []string
}

// NewProductStore creates an empty ProductStore.
func NewProductStore() *ProductStore {
	return &ProductStore{rows: make(map[uuid.UUID]*productRow)}
}

func (m *ProductStore) record(call string) {
	m.Calls = append(m.Calls, call)
}

// Create implements store.ProductStore.Create
func (m *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Create")

	if m.CreateErr != nil {
		return m.CreateErr
	}
	if err := m.checkUnique(product); err != nil {
		return err
	}

	m.assignImageIDs(product)
	m.seq++
	m.rows[product.ID] = &productRow{seq: m.seq, product: copyProduct(product)}
	return nil
}

// GetByID implements store.ProductStore.GetByID
func (m *ProductStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetByID")

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, store.ErrProductNotFound
	}
	p := copyProduct(&row.product)
	return &p, nil
}

// FindByTerm implements store.ProductStore.FindByTerm
func (m *ProductStore) FindByTerm(ctx context.Context, term string) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("FindByTerm")

	if m.GetErr != nil {
		return nil, m.GetErr
	}

	var best *productRow
	bestRank := 2
	for _, row := range m.ordered() {
		rank := 2
		switch {
		case strings.EqualFold(row.product.Slug, term):
			rank = 0
		case strings.ToUpper(row.product.Title) == strings.ToUpper(term):
			rank = 1
		}
		if rank < bestRank {
			best, bestRank = row, rank
		}
	}
	if best == nil {
		return nil, store.ErrProductNotFound
	}
	p := copyProduct(&best.product)
	return &p, nil
}

// List implements store.ProductStore.List
func (m *ProductStore) List(ctx context.Context, page store.Page) ([]*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("List")

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	products := []*domain.Product{}
	for i, row := range m.ordered() {
		if i < page.Offset {
			continue
		}
		if len(products) == page.Limit {
			break
		}
		p := copyProduct(&row.product)
		products = append(products, &p)
	}
	return products, nil
}

// Save implements store.ProductStore.Save
func (m *ProductStore) Save(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Save")

	if m.SaveErr != nil {
		return m.SaveErr
	}
	row, ok := m.rows[product.ID]
	if !ok {
		return store.ErrProductNotFound
	}
	if err := m.checkUnique(product); err != nil {
		return err
	}

	m.assignImageIDs(product)
	images := append([]domain.ProductImage{}, row.product.Images...)
	known := make(map[int64]bool, len(images))
	for _, img := range images {
		known[img.ID] = true
	}
	for _, img := range product.Images {
		if !known[img.ID] {
			images = append(images, img)
		}
	}

	updated := copyProduct(product)
	updated.Images = images
	updated.CreatedAt = row.product.CreatedAt
	row.product = updated
	return nil
}

// DeleteImages implements store.ProductStore.DeleteImages
func (m *ProductStore) DeleteImages(ctx context.Context, productID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteImages")

	if m.DeleteImagesErr != nil {
		return m.DeleteImagesErr
	}
	if row, ok := m.rows[productID]; ok {
		row.product.Images = []domain.ProductImage{}
	}
	return nil
}

// Delete implements store.ProductStore.Delete
func (m *ProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Delete")

	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.rows[id]; !ok {
		return store.ErrProductNotFound
	}
	delete(m.rows, id)
	return nil
}

// DeleteAll implements store.ProductStore.DeleteAll
func (m *ProductStore) DeleteAll(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteAll")

	if m.DeleteAllErr != nil {
		return 0, m.DeleteAllErr
	}
	n := int64(len(m.rows))
	m.rows = make(map[uuid.UUID]*productRow)
	return n, nil
}

// WithTx returns the store itself; InTransaction provides the rollback.
func (m *ProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return m
}

// InTransaction runs fn against the store and restores the state it had
// before the call when fn fails.
func (m *ProductStore) InTransaction(
	ctx context.Context,
	fn func(ctx context.Context, products store.ProductStore) error,
) error {
	snapshot := m.snapshot()

	if err := fn(ctx, m); err != nil {
		m.mu.Lock()
		m.rows = snapshot
		m.Rollbacks++
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	m.Commits++
	m.mu.Unlock()
	return nil
}

// Len reports how many products are stored.
func (m *ProductStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *ProductStore) snapshot() map[uuid.UUID]*productRow {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := make(map[uuid.UUID]*productRow, len(m.rows))
	for id, row := range m.rows {
		rows[id] = &productRow{seq: row.seq, product: copyProduct(&row.product)}
	}
	return rows
}

func (m *ProductStore) ordered() []*productRow {
	rows := make([]*productRow, 0, len(m.rows))
	for _, row := range m.rows {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	return rows
}

func (m *ProductStore) checkUnique(product *domain.Product) error {
	for id, row := range m.rows {
		if id == product.ID {
			continue
		}
		if row.product.Title == product.Title {
			return duplicateError("title", product.Title)
		}
		if row.product.Slug == product.Slug {
			return duplicateError("slug", product.Slug)
		}
	}
	return nil
}

func (m *ProductStore) assignImageIDs(product *domain.Product) {
	for i := range product.Images {
		if product.Images[i].ID == 0 {
			m.imageID++
			product.Images[i].ID = m.imageID
		}
		product.Images[i].ProductID = product.ID
	}
}

func duplicateError(column, value string) error {
	return &store.DBError{
		Kind:   store.ErrDuplicate,
		Code:   "23505",
		Detail: fmt.Sprintf("Key (%s)=(%s) already exists.", column, value),
	}
}

func copyProduct(p *domain.Product) domain.Product {
	c := *p
	c.Sizes = append([]string{}, p.Sizes...)
	c.Tags = append([]string{}, p.Tags...)
	c.Images = append([]domain.ProductImage{}, p.Images...)
	if p.Description != nil {
		desc := *p.Description
		c.Description = &desc
	}
	return c
}
