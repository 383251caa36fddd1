package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// DateRangeFilter bounds a report to an inclusive creation-date window.
// Zero values mean unbounded.
type DateRangeFilter struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}

// Contains reports whether t falls within the window
func (f DateRangeFilter) Contains(t time.Time) bool {
	if !f.From.IsZero() && t.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.After(f.To) {
		return false
	}
	return true
}

// CreditReportResponse is the credit profitability report
type CreditReportResponse struct {
	Rows                  []finance.CreditSummaryRow `json:"rows"`
	TotalFinanced         decimal.Decimal            `json:"total_financed"`
	TotalCollected        decimal.Decimal            `json:"total_collected"`
	TotalOutstanding      decimal.Decimal            `json:"total_outstanding"`
	TotalProportionalCost decimal.Decimal            `json:"total_proportional_cost"`
	TotalRealProfit       decimal.Decimal            `json:"total_real_profit"`
	PaymentsByMethod      map[string]decimal.Decimal `json:"payments_by_method"`
	PendingCount          int                        `json:"pending_count"`
	PaidCount             int                        `json:"paid_count"`
}

// LowStockItem is one product below its minimum stock level
type LowStockItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	MinStock  int       `json:"min_stock"`
}

// InventoryReportResponse is the stock valuation report
type InventoryReportResponse struct {
	ProductCount  int             `json:"product_count"`
	TotalUnits    int             `json:"total_units"`
	CostValue     decimal.Decimal `json:"cost_value"`
	RetailValue   decimal.Decimal `json:"retail_value"`
	LowStockItems []LowStockItem  `json:"low_stock_items"`
}
