package catalog

import (
	"strings"
	"time"

	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Category groups product listings
type Category struct {
	shared.BaseAggregateRoot
	Name        string
	Description string
	IsActive    bool
}

// NewCategory creates an active category
func NewCategory(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		IsActive:          true,
	}, nil
}

// Deactivate hides the category from listings
func (c *Category) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SubCategory is a second-level grouping under a category
type SubCategory struct {
	shared.BaseAggregateRoot
	CategoryID  uuid.UUID
	Name        string
	Description string
	IsActive    bool
}

// NewSubCategory creates an active subcategory under a category
func NewSubCategory(categoryID uuid.UUID, name, description string) (*SubCategory, error) {
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Parent category cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Subcategory name cannot be empty")
	}
	return &SubCategory{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CategoryID:        categoryID,
		Name:              name,
		Description:       description,
		IsActive:          true,
	}, nil
}
