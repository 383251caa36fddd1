package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/catalog"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create registers a new product. Codes are unique.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if existing, err := s.productRepo.FindByCode(ctx, req.Code); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A product with this code already exists")
	}

	product, err := catalog.NewProduct(req.Code, req.Name, req.CategoryID,
		valueobject.NewMoneyMXN(req.CostPrice), valueobject.NewMoneyMXN(req.SalePrice),
		req.Stock, req.MinStock)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with pagination
func (s *ProductService) List(ctx context.Context, filter shared.Filter) ([]ProductResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses, total, nil
}

// ListLowStock retrieves products at or below their minimum stock
func (s *ProductService) ListLowStock(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses, nil
}

// Update modifies product details. The code is immutable.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.UpdateDetails(req.Name, req.CategoryID,
		valueobject.NewMoneyMXN(req.CostPrice), valueobject.NewMoneyMXN(req.SalePrice),
		req.MinStock); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// AdjustStock sets the stock to an absolute value (manual correction)
func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, req AdjustStockRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.AdjustStock(req.Stock); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
