package catalog

import (
	"context"

	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/estuaire/backend/internal/domain/shared"
	"github.com/estuaire/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ProductService handles product listing operations
type ProductService struct {
	productRepo catalog.ProductRepository
	images      *ImageService
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, images *ImageService) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		images:      images,
	}
}

// Create creates a product listing owned by the vendor
func (s *ProductService) Create(ctx context.Context, vendorID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	price, err := valueobject.NewMoney(req.Price, valueobject.DefaultCurrency)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PRICE", err.Error())
	}

	product, err := catalog.NewProduct(vendorID, req.Name, price, req.Quantity, req.LocationID)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	product.PaymentCondition = req.PaymentCondition
	if req.TracksStock != nil {
		product.TracksStock = *req.TracksStock
	}
	if req.CategoryID != nil || req.SubCategoryID != nil {
		product.SetCategory(req.CategoryID, req.SubCategoryID)
	}
	// New listings go live immediately, review queues are not part of
	// this marketplace.
	if err := product.SetStatus(catalog.ProductStatusActive); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Update modifies a listing; only the owner vendor may do so
func (s *ProductService) Update(ctx context.Context, vendorID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsOwnedBy(vendorID) {
		return nil, shared.ErrForbidden
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	price := product.Price
	if req.Price != nil {
		price, err = valueobject.NewMoney(*req.Price, valueobject.DefaultCurrency)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_PRICE", err.Error())
		}
	}
	if err := product.UpdateDetails(name, description, price); err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		if err := product.SetQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := product.SetStatus(catalog.ProductStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil || req.SubCategoryID != nil {
		product.SetCategory(req.CategoryID, req.SubCategoryID)
	}
	if req.PaymentCondition != nil {
		product.PaymentCondition = *req.PaymentCondition
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a listing; only the owner vendor may do so
func (s *ProductService) Delete(ctx context.Context, vendorID, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if !product.IsOwnedBy(vendorID) {
		return shared.ErrForbidden
	}
	return s.productRepo.Delete(ctx, productID)
}

// Get returns a single listing. Non-active listings are only visible
// to their owner.
func (s *ProductService) Get(ctx context.Context, viewerID *uuid.UUID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive() && (viewerID == nil || !product.IsOwnedBy(*viewerID)) {
		return nil, shared.ErrNotFound
	}

	resp := ToProductResponse(product)
	if s.images != nil {
		images, err := s.images.ListForProduct(ctx, product.ID)
		if err == nil {
			resp.Images = images
		}
	}
	return &resp, nil
}

// List returns publicly visible (active) listings
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	domainFilter := toDomainFilter(filter)
	products, total, err := s.productRepo.FindActive(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(ToProductResponses(products), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// ListMine returns the vendor's own listings across all statuses
func (s *ProductService) ListMine(ctx context.Context, vendorID uuid.UUID, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	domainFilter := toDomainFilter(filter)
	products, total, err := s.productRepo.FindByOwner(ctx, vendorID, domainFilter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(ToProductResponses(products), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

func toDomainFilter(filter ProductListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.SubCategoryID != nil {
		domainFilter.Filters["sub_category_id"] = *filter.SubCategoryID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = *filter.Status
	}
	return domainFilter
}
