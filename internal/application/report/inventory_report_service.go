package report

import (
	"context"

	"github.com/salon/backend/internal/domain/catalog"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InventoryReportService builds the stock valuation and low-stock views
type InventoryReportService struct {
	productRepo catalog.ProductRepository
}

// NewInventoryReportService creates a new InventoryReportService
func NewInventoryReportService(productRepo catalog.ProductRepository) *InventoryReportService {
	return &InventoryReportService{productRepo: productRepo}
}

// Valuation computes total stock units and their cost/retail value
func (s *InventoryReportService) Valuation(ctx context.Context) (*InventoryReportResponse, error) {
	products, err := s.productRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	report := &InventoryReportResponse{}
	for i := range products {
		p := &products[i]
		units := decimal.NewFromInt(int64(p.Stock))

		report.ProductCount++
		report.TotalUnits += p.Stock
		report.CostValue = report.CostValue.Add(p.CostPrice.Mul(units))
		report.RetailValue = report.RetailValue.Add(p.SalePrice.Mul(units))

		if p.IsLowStock() {
			report.LowStockItems = append(report.LowStockItems, LowStockItem{
				ProductID: p.ID,
				Code:      p.Code,
				Name:      p.Name,
				Stock:     p.Stock,
				MinStock:  p.MinStock,
			})
		}
	}

	return report, nil
}
