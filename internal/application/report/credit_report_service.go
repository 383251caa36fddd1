package report

import (
	"context"

	"github.com/salon/backend/internal/domain/credit"
	"github.com/salon/backend/internal/domain/finance"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CreditReportService builds the credit profitability report. Cost is
// recognized in proportion to collections, differing intentionally from
// the immediate-recognition model used for completed sales.
type CreditReportService struct {
	creditRepo credit.Repository
}

// NewCreditReportService creates a new CreditReportService
func NewCreditReportService(creditRepo credit.Repository) *CreditReportService {
	return &CreditReportService{creditRepo: creditRepo}
}

// Profitability computes the per-credit and aggregate profitability view
func (s *CreditReportService) Profitability(ctx context.Context, filter DateRangeFilter) (*CreditReportResponse, error) {
	credits, err := s.creditRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	report := &CreditReportResponse{
		PaymentsByMethod: make(map[string]decimal.Decimal),
	}
	for i := range credits {
		c := &credits[i]
		if !filter.Contains(c.CreatedAt) {
			continue
		}

		row := buildCreditRow(c)
		report.Rows = append(report.Rows, row)

		report.TotalFinanced = report.TotalFinanced.Add(c.Price)
		report.TotalCollected = report.TotalCollected.Add(row.TotalPaid)
		report.TotalOutstanding = report.TotalOutstanding.Add(c.RemainingAmount)
		report.TotalProportionalCost = report.TotalProportionalCost.Add(row.ProportionalCost)
		report.TotalRealProfit = report.TotalRealProfit.Add(row.RealProfit)

		for j := range c.Payments {
			method := c.Payments[j].PaymentMethod.String()
			report.PaymentsByMethod[method] = report.PaymentsByMethod[method].Add(c.Payments[j].Amount)
		}

		if c.IsPaid() {
			report.PaidCount++
		} else {
			report.PendingCount++
		}
	}

	return report, nil
}

func buildCreditRow(c *credit.Credit) finance.CreditSummaryRow {
	return finance.CreditSummaryRow{
		CreditID:         c.ID.String(),
		ClientName:       c.ClientName,
		ProductName:      c.ProductName,
		Price:            c.Price,
		TotalPaid:        c.TotalPaid(),
		RemainingAmount:  c.RemainingAmount,
		ProportionalCost: c.ProportionalCost(),
		RealProfit:       c.RealProfit(),
		Status:           c.Status.String(),
	}
}
