package catalog

import (
	"context"

	"github.com/estuaire/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// CategoryService handles category reference data
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// CreateSub creates a subcategory under an existing category
func (s *CategoryService) CreateSub(ctx context.Context, categoryID uuid.UUID, req CreateSubCategoryRequest) (*SubCategoryResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	sub, err := catalog.NewSubCategory(categoryID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.SaveSubCategory(ctx, sub); err != nil {
		return nil, err
	}
	resp := ToSubCategoryResponse(sub)
	return &resp, nil
}

// List returns active categories
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return out, nil
}

// ListSub returns the subcategories of a category
func (s *CategoryService) ListSub(ctx context.Context, categoryID uuid.UUID) ([]SubCategoryResponse, error) {
	subs, err := s.categoryRepo.FindSubCategories(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	out := make([]SubCategoryResponse, len(subs))
	for i := range subs {
		out[i] = ToSubCategoryResponse(&subs[i])
	}
	return out, nil
}
