package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product-specific validation errors
var (
	ErrProductIDEmpty    = fmt.Errorf("%w: product ID cannot be empty", ErrValidation)
	ErrProductTitleEmpty = fmt.Errorf("%w: product title cannot be empty", ErrValidation)
	ErrProductSlugEmpty  = fmt.Errorf("%w: product slug cannot be empty", ErrValidation)
	ErrProductPriceNeg   = fmt.Errorf("%w: product price cannot be negative", ErrValidation)
	ErrProductStockNeg   = fmt.Errorf("%w: product stock cannot be negative", ErrValidation)
	ErrProductImageURL   = fmt.Errorf("%w: product image URL cannot be empty", ErrValidation)
)

// Gender is the audience a product is targeted at.
type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderKid    Gender = "kid"
	GenderUnisex Gender = "unisex"
)

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMen, GenderWomen, GenderKid, GenderUnisex:
		return true
	}
	return false
}

// ProductImage is an image URL exclusively owned by one product. ID is zero
// until the row has been written.
type ProductImage struct {
	ID        int64
	ProductID uuid.UUID
	URL       string
}

// Product is a catalog entry together with its ordered image collection.
type Product struct {
	ID          uuid.UUID
	Title       string
	Price       decimal.Decimal
	Description *string
	Slug        string
	Stock       int
	Sizes       []string
	Gender      Gender
	Tags        []string
	Images      []ProductImage
	Owner       *User
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductDetails holds the scalar fields of a product as supplied by a client.
// Nil pointers mean "not supplied".
type ProductDetails struct {
	Title       *string
	Price       *decimal.Decimal
	Description *string
	Slug        *string
	Stock       *int
	Sizes       *[]string
	Gender      *Gender
	Tags        *[]string
}

// NewProduct builds an unsaved product from details, owned by owner. The slug
// falls back to the title and is normalized.
func NewProduct(details ProductDetails, owner *User) (*Product, error) {
	now := time.Now().UTC()
	p := &Product{
		ID:        uuid.New(),
		Sizes:     []string{},
		Tags:      []string{},
		Images:    []ProductImage{},
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Apply(details)
	if p.Slug == "" {
		p.Slug = NormalizeSlug(p.Title)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Apply merges the supplied fields onto p without touching images or owner.
// The slug is re-normalized afterwards.
func (p *Product) Apply(d ProductDetails) {
	if d.Title != nil {
		p.Title = strings.TrimSpace(*d.Title)
	}
	if d.Price != nil {
		p.Price = *d.Price
	}
	if d.Description != nil {
		desc := *d.Description
		p.Description = &desc
	}
	if d.Slug != nil {
		p.Slug = *d.Slug
	}
	if d.Stock != nil {
		p.Stock = *d.Stock
	}
	if d.Sizes != nil {
		p.Sizes = append([]string{}, (*d.Sizes)...)
	}
	if d.Gender != nil {
		p.Gender = *d.Gender
	}
	if d.Tags != nil {
		p.Tags = append([]string{}, (*d.Tags)...)
	}
	p.Slug = NormalizeSlug(p.Slug)
}

// ReplaceImages discards the in-memory image collection and builds one
// unsaved image per URL, preserving order.
func (p *Product) ReplaceImages(urls []string) {
	images := make([]ProductImage, 0, len(urls))
	for _, u := range urls {
		images = append(images, ProductImage{ProductID: p.ID, URL: u})
	}
	p.Images = images
}

// ImageURLs returns the image URLs in order. Never nil.
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

// Validate checks if the Product has valid data.
func (p *Product) Validate() error {
	if p.ID == uuid.Nil {
		return ErrProductIDEmpty
	}
	if p.Title == "" {
		return ErrProductTitleEmpty
	}
	if p.Slug == "" {
		return ErrProductSlugEmpty
	}
	if p.Price.IsNegative() {
		return ErrProductPriceNeg
	}
	if p.Stock < 0 {
		return ErrProductStockNeg
	}
	if !p.Gender.Valid() {
		return NewValidationError("gender", "must be one of men, women, kid, unisex", ErrInvalidGender)
	}
	for _, img := range p.Images {
		if strings.TrimSpace(img.URL) == "" {
			return ErrProductImageURL
		}
	}
	return nil
}

// NormalizeSlug lower-cases s, turns spaces into underscores and drops
// apostrophes.
func NormalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "'", "")
}

// PlainProduct is the client-facing shape of a product: images are flattened
// to their URLs.
type PlainProduct struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description"`
	Slug        string          `json:"slug"`
	Stock       int             `json:"stock"`
	Sizes       []string        `json:"sizes"`
	Gender      Gender          `json:"gender"`
	Tags        []string        `json:"tags"`
	Images      []string        `json:"images"`
	User        *User           `json:"user,omitempty"`
}

// Plain converts p to its client-facing shape.
func (p *Product) Plain() PlainProduct {
	sizes := p.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return PlainProduct{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Slug:        p.Slug,
		Stock:       p.Stock,
		Sizes:       sizes,
		Gender:      p.Gender,
		Tags:        tags,
		Images:      p.ImageURLs(),
		User:        p.Owner,
	}
}
