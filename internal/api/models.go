package api

import (
	"github.com/google/uuid"
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/phrazzld/shop-api/internal/service"
	"github.com/shopspring/decimal"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50"`
	FullName string `json:"fullName" validate:"required,min=1"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50"`
}

// AuthResponse is the user followed by a freshly issued token.
type AuthResponse struct {
	ID       uuid.UUID     `json:"id"`
	Email    string        `json:"email"`
	FullName string        `json:"fullName"`
	IsActive bool          `json:"isActive"`
	Roles    []domain.Role `json:"roles"`
	Token    string        `json:"token"`
}

func newAuthResponse(res *service.AuthResult) AuthResponse {
	return AuthResponse{
		ID:       res.User.ID,
		Email:    res.User.Email,
		FullName: res.User.FullName,
		IsActive: res.User.IsActive,
		Roles:    res.User.Roles,
		Token:    res.Token,
	}
}

// PrivateResponse echoes the authenticated user and the request headers.
type PrivateResponse struct {
	OK         bool                `json:"ok"`
	Message    string              `json:"msg"`
	User       *domain.User        `json:"user"`
	UserEmail  string              `json:"userEmail"`
	RawHeaders []string            `json:"rawHeaders"`
	Headers    map[string][]string `json:"headers"`
}

// UserEchoResponse echoes the authenticated user.
type UserEchoResponse struct {
	OK   bool         `json:"ok"`
	User *domain.User `json:"user"`
}

// CreateProductRequest defines the payload for creating a product.
type CreateProductRequest struct {
	Title       string           `json:"title"       validate:"required,min=1"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Slug        *string          `json:"slug"        validate:"omitnil,min=1"`
	Stock       *int             `json:"stock"       validate:"omitnil,gte=0"`
	Sizes       []string         `json:"sizes"       validate:"required,dive,required"`
	Gender      string           `json:"gender"      validate:"required,oneof=men women kid unisex"`
	Tags        []string         `json:"tags"        validate:"omitempty,dive,required"`
	Images      []string         `json:"images"      validate:"omitempty,dive,required"`
}

// ToInput converts the request to a service.ProductInput.
func (req CreateProductRequest) ToInput() service.ProductInput {
	gender := domain.Gender(req.Gender)
	details := domain.ProductDetails{
		Title:       &req.Title,
		Price:       req.Price,
		Description: req.Description,
		Slug:        req.Slug,
		Stock:       req.Stock,
		Sizes:       &req.Sizes,
		Gender:      &gender,
	}
	if req.Tags != nil {
		details.Tags = &req.Tags
	}
	return service.ProductInput{Details: details, Images: req.Images}
}

// UpdateProductRequest defines the payload for updating a product. Every
// field is optional; a present "images" array replaces the image set.
type UpdateProductRequest struct {
	Title       *string          `json:"title"       validate:"omitnil,min=1"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Slug        *string          `json:"slug"        validate:"omitnil,min=1"`
	Stock       *int             `json:"stock"       validate:"omitnil,gte=0"`
	Sizes       *[]string        `json:"sizes"       validate:"omitnil,dive,required"`
	Gender      *string          `json:"gender"      validate:"omitnil,oneof=men women kid unisex"`
	Tags        *[]string        `json:"tags"        validate:"omitnil,dive,required"`
	Images      *[]string        `json:"images"      validate:"omitnil,dive,required"`
}

// ToPatch converts the request to a service.ProductPatch.
func (req UpdateProductRequest) ToPatch() service.ProductPatch {
	details := domain.ProductDetails{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Slug:        req.Slug,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Tags:        req.Tags,
	}
	if req.Gender != nil {
		gender := domain.Gender(*req.Gender)
		details.Gender = &gender
	}
	return service.ProductPatch{Details: details, Images: req.Images}
}

// PaginationQuery holds the optional limit and offset query parameters.
type PaginationQuery struct {
	Limit  *int `json:"limit"  validate:"omitnil,gt=0"`
	Offset *int `json:"offset" validate:"omitnil,gte=0"`
}

// DeleteAllResponse reports a bulk delete.
type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
