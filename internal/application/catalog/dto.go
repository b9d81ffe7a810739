package catalog

import (
	"time"

	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Product DTOs ====================

// CreateProductRequest represents a request to create a product listing
type CreateProductRequest struct {
	Name             string          `json:"name" binding:"required,min=1,max=200"`
	Description      string          `json:"description" binding:"max=5000"`
	Price            decimal.Decimal `json:"price" binding:"required"`
	Quantity         int             `json:"quantity" binding:"min=0"`
	TracksStock      *bool           `json:"tracks_stock"`
	CategoryID       *uuid.UUID      `json:"category_id"`
	SubCategoryID    *uuid.UUID      `json:"subcategory_id"`
	LocationID       uuid.UUID       `json:"location_id" binding:"required"`
	PaymentCondition string          `json:"payment_condition" binding:"max=200"`
}

// UpdateProductRequest represents a request to update a product listing
type UpdateProductRequest struct {
	Name             *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description      *string          `json:"description" binding:"omitempty,max=5000"`
	Price            *decimal.Decimal `json:"price"`
	Quantity         *int             `json:"quantity" binding:"omitempty,min=0"`
	Status           *string          `json:"status"`
	CategoryID       *uuid.UUID       `json:"category_id"`
	SubCategoryID    *uuid.UUID       `json:"subcategory_id"`
	PaymentCondition *string          `json:"payment_condition" binding:"omitempty,max=200"`
}

// ProductListFilter represents filter options for product listings
type ProductListFilter struct {
	Search        string     `form:"search"`
	CategoryID    *uuid.UUID `form:"category_id"`
	SubCategoryID *uuid.UUID `form:"subcategory_id"`
	Status        *string    `form:"status"`
	Page          int        `form:"page"`
	PageSize      int        `form:"page_size"`
	OrderBy       string     `form:"order_by"`
	OrderDir      string     `form:"order_dir"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID               uuid.UUID       `json:"id"`
	OwnerID          uuid.UUID       `json:"owner_id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	Price            decimal.Decimal `json:"price"`
	Currency         string          `json:"currency"`
	Quantity         int             `json:"quantity"`
	TracksStock      bool            `json:"tracks_stock"`
	Status           string          `json:"status"`
	CategoryID       *uuid.UUID      `json:"category_id,omitempty"`
	SubCategoryID    *uuid.UUID      `json:"subcategory_id,omitempty"`
	LocationID       uuid.UUID       `json:"location_id"`
	PaymentCondition string          `json:"payment_condition,omitempty"`
	Images           []ImageResponse `json:"images,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to its API representation
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		OwnerID:          p.OwnerID,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price.Amount(),
		Currency:         string(p.Currency),
		Quantity:         p.Quantity,
		TracksStock:      p.TracksStock,
		Status:           string(p.Status),
		CategoryID:       p.CategoryID,
		SubCategoryID:    p.SubCategoryID,
		LocationID:       p.LocationID,
		PaymentCondition: p.PaymentCondition,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}

// ==================== Category DTOs ====================

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=1000"`
}

// CreateSubCategoryRequest represents a request to create a subcategory
type CreateSubCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=1000"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
}

// SubCategoryResponse represents a subcategory in API responses
type SubCategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
}

// ToCategoryResponse converts a domain category
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
	}
}

// ToSubCategoryResponse converts a domain subcategory
func ToSubCategoryResponse(c *catalog.SubCategory) SubCategoryResponse {
	return SubCategoryResponse{
		ID:          c.ID,
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
	}
}

// ==================== Image DTOs ====================

// RequestImageUploadRequest asks for a presigned upload slot
type RequestImageUploadRequest struct {
	FileName string `json:"file_name" binding:"required,max=255"`
	MimeType string `json:"mime_type" binding:"required,max=100"`
	Size     int64  `json:"size" binding:"required,min=1"`
}

// ImageUploadResponse carries the presigned upload URL
type ImageUploadResponse struct {
	StorageKey string    `json:"storage_key"`
	UploadURL  string    `json:"upload_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ConfirmImageUploadRequest confirms a completed upload
type ConfirmImageUploadRequest struct {
	StorageKey string `json:"storage_key" binding:"required"`
	FileName   string `json:"file_name" binding:"required,max=255"`
	MimeType   string `json:"mime_type" binding:"required,max=100"`
	Size       int64  `json:"size" binding:"required,min=1"`
}

// ImageResponse represents a product image with a resolved URL
type ImageResponse struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	FileName  string    `json:"file_name"`
	MimeType  string    `json:"mime_type"`
	IsPrimary bool      `json:"is_primary"`
}
