package finance

import (
	"time"

	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// MovementType classifies a petty cash movement
type MovementType string

const (
	MovementTypeIncome  MovementType = "INCOME"
	MovementTypeExpense MovementType = "EXPENSE"
)

// IsValid checks if the type is a valid MovementType
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeIncome, MovementTypeExpense:
		return true
	}
	return false
}

// String returns the string representation of MovementType
func (t MovementType) String() string {
	return string(t)
}

// PettyCashMovement represents a single cash-drawer movement.
// Movements are immutable; the drawer balance is derived by summing them.
type PettyCashMovement struct {
	shared.BaseEntity
	Date        time.Time       `gorm:"not null;index"`
	Type        MovementType    `gorm:"size:20;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Description string          `gorm:"size:500;not null"`
}

// TableName returns the table name for GORM
func (PettyCashMovement) TableName() string {
	return "petty_cash_movements"
}

// NewPettyCashMovement creates a new petty cash movement
func NewPettyCashMovement(date time.Time, movementType MovementType, amount valueobject.Money, description string) (*PettyCashMovement, error) {
	if date.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Movement date is required")
	}
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Movement type is not valid")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Movement amount must be positive")
	}
	if description == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Movement description cannot be empty")
	}

	return &PettyCashMovement{
		BaseEntity:  shared.NewBaseEntity(),
		Date:        date,
		Type:        movementType,
		Amount:      amount.Amount(),
		Description: description,
	}, nil
}

// SignedAmount returns the amount with income positive and expense negative
func (m *PettyCashMovement) SignedAmount() decimal.Decimal {
	if m.Type == MovementTypeExpense {
		return m.Amount.Neg()
	}
	return m.Amount
}

// PettyCashBalance derives the drawer balance from a movement history
func PettyCashBalance(movements []PettyCashMovement) decimal.Decimal {
	balance := decimal.Zero
	for _, m := range movements {
		balance = balance.Add(m.SignedAmount())
	}
	return balance
}
