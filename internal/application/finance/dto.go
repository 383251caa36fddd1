package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Category    string          `json:"category" binding:"required,min=1,max=100"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
}

// UpdateExpenseRequest represents a request to modify an expense
type UpdateExpenseRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Category    string          `json:"category" binding:"required,min=1,max=100"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToExpenseResponse converts an Expense to a response DTO
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// CreateMovementRequest represents a request to record a petty cash movement
type CreateMovementRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required,min=1,max=500"`
}

// MovementResponse represents a petty cash movement in API responses
type MovementResponse struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PettyCashStatus is the drawer balance with its movement history
type PettyCashStatus struct {
	Balance      decimal.Decimal    `json:"balance"`
	TotalIncome  decimal.Decimal    `json:"total_income"`
	TotalExpense decimal.Decimal    `json:"total_expense"`
	Movements    []MovementResponse `json:"movements"`
}

// ToMovementResponse converts a PettyCashMovement to a response DTO
func ToMovementResponse(m *finance.PettyCashMovement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		Date:        m.Date,
		Type:        m.Type.String(),
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
