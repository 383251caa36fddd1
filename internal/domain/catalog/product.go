package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Product represents a sellable product aggregate root.
// It owns the stock mutation rules: stock can never go negative.
type Product struct {
	shared.BaseAggregateRoot
	Code       string          `gorm:"size:50;not null;uniqueIndex"`
	Name       string          `gorm:"size:200;not null"`
	CategoryID uuid.UUID       `gorm:"type:uuid;index"`
	CostPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	SalePrice  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Stock      int             `gorm:"not null;default:0"`
	MinStock   int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(code, name string, categoryID uuid.UUID, costPrice, salePrice valueobject.Money, stock, minStock int) (*Product, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if costPrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Cost price cannot be negative")
	}
	if salePrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Sale price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Stock cannot be negative")
	}
	if minStock < 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Minimum stock cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		CategoryID:        categoryID,
		CostPrice:         costPrice.Amount(),
		SalePrice:         salePrice.Amount(),
		Stock:             stock,
		MinStock:          minStock,
	}, nil
}

// DecreaseStock removes quantity units from stock.
// Fails with INSUFFICIENT_STOCK when quantity exceeds the current stock.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Quantity must be positive")
	}
	if quantity > p.Stock {
		return shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Insufficient stock for %s: have %d, need %d", p.Name, p.Stock, quantity))
	}

	p.Stock -= quantity
	p.UpdatedAt = time.Now()

	return nil
}

// IncreaseStock adds quantity units back to stock.
// Used for cancellation restoration and incoming adjustments; no upper bound.
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Quantity must be positive")
	}

	p.Stock += quantity
	p.UpdatedAt = time.Now()

	return nil
}

// AdjustStock sets the stock to an absolute value (manual correction)
func (p *Product) AdjustStock(newStock int) error {
	if newStock < 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Stock cannot be negative")
	}

	p.Stock = newStock
	p.UpdatedAt = time.Now()

	return nil
}

// UpdateDetails updates the editable product fields
func (p *Product) UpdateDetails(name string, categoryID uuid.UUID, costPrice, salePrice valueobject.Money, minStock int) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if costPrice.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Cost price cannot be negative")
	}
	if salePrice.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Sale price cannot be negative")
	}
	if minStock < 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Minimum stock cannot be negative")
	}

	p.Name = name
	p.CategoryID = categoryID
	p.CostPrice = costPrice.Amount()
	p.SalePrice = salePrice.Amount()
	p.MinStock = minStock
	p.UpdatedAt = time.Now()

	return nil
}

// IsLowStock returns true when stock has reached the minimum threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// GetCostPriceMoney returns the cost price as Money
func (p *Product) GetCostPriceMoney() valueobject.Money {
	return valueobject.NewMoneyMXN(p.CostPrice)
}

// GetSalePriceMoney returns the sale price as Money
func (p *Product) GetSalePriceMoney() valueobject.Money {
	return valueobject.NewMoneyMXN(p.SalePrice)
}
