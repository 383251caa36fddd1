package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/catalog"
	"github.com/salon/backend/internal/domain/shared"
)

// CategoryService handles product category operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create registers a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	if existing, err := s.categoryRepo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A category with this name already exists")
	}

	category, err := catalog.NewCategory(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// List retrieves all categories
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses, nil
}

// Rename changes a category name
func (s *CategoryService) Rename(ctx context.Context, id uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := category.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// Delete removes a category
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
