package report

import (
	"context"

	"github.com/salon/backend/internal/domain/finance"
	"github.com/salon/backend/internal/domain/sales"
	"github.com/salon/backend/internal/domain/shared"
)

// FinancialReportService derives the income statement from stored data.
// Read-only: it recomputes from scratch on every call and persists
// nothing.
type FinancialReportService struct {
	saleRepo    sales.Repository
	expenseRepo finance.ExpenseRepository
}

// NewFinancialReportService creates a new FinancialReportService
func NewFinancialReportService(saleRepo sales.Repository, expenseRepo finance.ExpenseRepository) *FinancialReportService {
	return &FinancialReportService{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
	}
}

// IncomeStatement builds the income statement for the given window.
// Sales are bucketed by creation time, expenses by their expense date.
func (s *FinancialReportService) IncomeStatement(ctx context.Context, filter DateRangeFilter) (*finance.IncomeStatement, error) {
	saleList, err := s.saleRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	inWindow := saleList[:0]
	for i := range saleList {
		if filter.Contains(saleList[i].CreatedAt) {
			inWindow = append(inWindow, saleList[i])
		}
	}

	var expenses []finance.Expense
	if filter.From.IsZero() && filter.To.IsZero() {
		expenses, err = s.expenseRepo.FindAll(ctx, shared.Filter{})
	} else {
		expenses, err = s.expenseRepo.FindByDateRange(ctx, filter.From, filter.To)
	}
	if err != nil {
		return nil, err
	}

	return finance.BuildIncomeStatement(inWindow, expenses), nil
}
