package catalog

import (
	"strings"
	"time"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/estuaire/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ProductStatus represents the lifecycle status of a listing
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusSold     ProductStatus = "sold"
)

// ValidProductStatuses lists every accepted product status
var ValidProductStatuses = []ProductStatus{
	ProductStatusActive,
	ProductStatusInactive,
	ProductStatusPending,
	ProductStatusSold,
}

// IsValidProductStatus reports whether s is a known product status
func IsValidProductStatus(s ProductStatus) bool {
	for _, v := range ValidProductStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Product is the aggregate root for a vendor listing.
// Stock is a plain quantity; TracksStock=false means unlimited availability.
type Product struct {
	shared.BaseAggregateRoot
	OwnerID          uuid.UUID
	Name             string
	Description      string
	Price            valueobject.Money `gorm:"type:decimal(12,2)"`
	Currency         valueobject.Currency
	Quantity         int
	TracksStock      bool
	Status           ProductStatus
	CategoryID       *uuid.UUID
	SubCategoryID    *uuid.UUID
	LocationID       uuid.UUID
	PaymentCondition string
}

// NewProduct creates a pending product listing for a vendor
func NewProduct(ownerID uuid.UUID, name string, price valueobject.Money, quantity int, locationID uuid.UUID) (*Product, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Product owner cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if locationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Product location cannot be empty")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OwnerID:           ownerID,
		Name:              name,
		Price:             price,
		Currency:          price.Currency(),
		Quantity:          quantity,
		TracksStock:       true,
		Status:            ProductStatusPending,
		LocationID:        locationID,
	}, nil
}

// UpdateDetails updates the mutable listing fields
func (p *Product) UpdateDetails(name, description string, price valueobject.Money) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	p.Name = name
	p.Description = description
	p.Price = price
	p.Currency = price.Currency()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetCategory assigns category and subcategory references
func (p *Product) SetCategory(categoryID, subCategoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.SubCategoryID = subCategoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetStatus moves the listing to the given status
func (p *Product) SetStatus(status ProductStatus) error {
	if !IsValidProductStatus(status) {
		return shared.NewDomainError("INVALID_STATUS", "Unknown product status")
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetQuantity replaces the stock quantity
func (p *Product) SetQuantity(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	p.Quantity = quantity
	if p.Status == ProductStatusSold && quantity > 0 {
		p.Status = ProductStatusActive
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// IsAvailable reports whether the requested quantity can be fulfilled.
// Listings that do not track stock are always available.
func (p *Product) IsAvailable(requested int) bool {
	if !p.TracksStock {
		return true
	}
	return p.Quantity >= requested
}

// DecrementStock removes sold units. The listing flips to sold when the
// quantity reaches zero. Untracked listings are left untouched.
func (p *Product) DecrementStock(requested int) error {
	if requested <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Requested quantity must be positive")
	}
	if !p.TracksStock {
		return nil
	}
	if p.Quantity < requested {
		return shared.NewInsufficientStockError(p.ID, p.Name, requested, p.Quantity)
	}
	p.Quantity -= requested
	if p.Quantity == 0 {
		p.Status = ProductStatusSold
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// RestoreStock returns units to the listing after a cancellation.
// A sold listing becomes active again once quantity rises above zero.
func (p *Product) RestoreStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Restored quantity must be positive")
	}
	if !p.TracksStock {
		return nil
	}
	p.Quantity += quantity
	if p.Status == ProductStatusSold && p.Quantity > 0 {
		p.Status = ProductStatusActive
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// IsActive reports whether the listing is publicly purchasable
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// IsOwnedBy reports whether the given user owns the listing
func (p *Product) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}
