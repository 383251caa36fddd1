package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/finance"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
)

// ExpenseService handles operating-expense bookkeeping
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := finance.NewExpense(req.Date, req.Category,
		valueobject.NewMoneyMXN(req.Amount), req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToExpenseResponse(expense)
	return &response, nil
}

// List retrieves expenses with pagination
func (s *ExpenseService) List(ctx context.Context, filter shared.Filter) ([]ExpenseResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	expenses, err := s.expenseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.expenseRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses, total, nil
}

// Update modifies an existing expense
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := expense.Update(req.Date, req.Category,
		valueobject.NewMoneyMXN(req.Amount), req.Description); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.expenseRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}
