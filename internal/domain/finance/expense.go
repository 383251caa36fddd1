package finance

import (
	"time"

	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Expense represents an operating expense. Category is a free-text label
// used only for report grouping.
type Expense struct {
	shared.BaseEntity
	Date        time.Time       `gorm:"not null;index"`
	Category    string          `gorm:"size:100;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Description string          `gorm:"size:500"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a new expense record
func NewExpense(date time.Time, category string, amount valueobject.Money, description string) (*Expense, error) {
	if date.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Expense date is required")
	}
	if category == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Expense category cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Expense amount must be positive")
	}

	return &Expense{
		BaseEntity:  shared.NewBaseEntity(),
		Date:        date,
		Category:    category,
		Amount:      amount.Amount(),
		Description: description,
	}, nil
}

// Update modifies the expense fields
func (e *Expense) Update(date time.Time, category string, amount valueobject.Money, description string) error {
	if date.IsZero() {
		return shared.NewDomainError("VALIDATION_ERROR", "Expense date is required")
	}
	if category == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Expense category cannot be empty")
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("VALIDATION_ERROR", "Expense amount must be positive")
	}

	e.Date = date
	e.Category = category
	e.Amount = amount.Amount()
	e.Description = description
	e.UpdatedAt = time.Now()

	return nil
}

// GetAmountMoney returns the expense amount as Money
func (e *Expense) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyMXN(e.Amount)
}

// Decimal shorthand used across finance computations
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100))
}
