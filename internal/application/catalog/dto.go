package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Code       string          `json:"code" binding:"required,min=1,max=50"`
	Name       string          `json:"name" binding:"required,min=1,max=200"`
	CategoryID uuid.UUID       `json:"category_id"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"min_stock"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name       string          `json:"name" binding:"required,min=1,max=200"`
	CategoryID uuid.UUID       `json:"category_id"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	MinStock   int             `json:"min_stock"`
}

// AdjustStockRequest represents a manual stock correction
type AdjustStockRequest struct {
	Stock int `json:"stock"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	CategoryID uuid.UUID       `json:"category_id,omitempty"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"min_stock"`
	LowStock   bool            `json:"low_stock"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ToProductResponse converts a Product to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Code:       p.Code,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		CostPrice:  p.CostPrice,
		SalePrice:  p.SalePrice,
		Stock:      p.Stock,
		MinStock:   p.MinStock,
		LowStock:   p.IsLowStock(),
		CreatedAt:  p.CreatedAt,
	}
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCategoryResponse converts a Category to a response DTO
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}
