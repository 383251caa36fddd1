package credit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// CreditStatus represents the status of a credit
type CreditStatus string

const (
	CreditStatusPending CreditStatus = "PENDING"
	CreditStatusPaid    CreditStatus = "PAID"
)

// IsValid checks if the status is a valid CreditStatus
func (s CreditStatus) IsValid() bool {
	switch s {
	case CreditStatusPending, CreditStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of CreditStatus
func (s CreditStatus) String() string {
	return string(s)
}

// Payment represents an installment applied against a credit.
// Payments are immutable after creation; the only deletion path is the
// cascade when the owning credit is deleted.
type Payment struct {
	ID            uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	CreditID      uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal           `gorm:"type:decimal(18,2);not null"`
	PaymentMethod valueobject.PaymentMethod `gorm:"size:20;not null"`
	Notes         string                    `gorm:"size:500"`
	CreatedAt     time.Time
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "credit_payments"
}

// Credit represents a store-financed purchase paid in installments.
// Product name and cost price are snapshots captured at issuance; the
// credit neither reserves nor decrements stock.
type Credit struct {
	shared.BaseAggregateRoot
	ClientName      string          `gorm:"size:200;not null"`
	ClientPhone     string          `gorm:"size:30"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName     string          `gorm:"size:200;not null"`
	CostPrice       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Price           decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	RemainingAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status          CreditStatus    `gorm:"size:20;not null;index"`
	DueDate         time.Time       `gorm:"not null"`
	Notes           string          `gorm:"size:500"`
	Payments        []Payment       `gorm:"foreignKey:CreditID;references:ID"`
}

// TableName returns the table name for GORM
func (Credit) TableName() string {
	return "credits"
}

// NewCredit issues a credit for the agreed price with the full balance
// outstanding. Cost price is snapshotted from the product at issuance.
func NewCredit(clientName, clientPhone string, productID uuid.UUID, productName string, costPrice, price valueobject.Money, dueDate time.Time) (*Credit, error) {
	if clientName == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if !price.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Credit price must be positive")
	}
	if costPrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Cost price cannot be negative")
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Due date is required")
	}

	credit := &Credit{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientName:        clientName,
		ClientPhone:       clientPhone,
		ProductID:         productID,
		ProductName:       productName,
		CostPrice:         costPrice.Amount(),
		Price:             price.Amount(),
		RemainingAmount:   price.Amount(),
		Status:            CreditStatusPending,
		DueDate:           dueDate,
		Payments:          make([]Payment, 0),
	}

	credit.AddDomainEvent(NewCreditIssuedEvent(credit))

	return credit, nil
}

// ApplyPayment records an installment and updates the stored balance.
// A payment greater than the remaining balance is rejected; a payment
// equal to it is allowed and closes the credit.
func (c *Credit) ApplyPayment(amount valueobject.Money, method valueobject.PaymentMethod, notes string) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}
	if amount.Amount().GreaterThan(c.RemainingAmount) {
		return nil, shared.NewDomainError("PAYMENT_EXCEEDS_BALANCE",
			fmt.Sprintf("Payment of %s exceeds remaining balance of %s", amount.Amount(), c.RemainingAmount))
	}

	payment := Payment{
		ID:            uuid.New(),
		CreditID:      c.ID,
		Amount:        amount.Amount(),
		PaymentMethod: method,
		Notes:         notes,
		CreatedAt:     time.Now(),
	}

	c.Payments = append(c.Payments, payment)
	c.RemainingAmount = c.RemainingAmount.Sub(payment.Amount)
	c.UpdatedAt = time.Now()

	if c.RemainingAmount.LessThanOrEqual(decimal.Zero) {
		c.Status = CreditStatusPaid
		c.AddDomainEvent(NewCreditPaidEvent(c))
	}

	c.AddDomainEvent(NewPaymentAppliedEvent(c, &payment))

	return &payment, nil
}

// TotalPaid returns the sum of all payment amounts
func (c *Credit) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, payment := range c.Payments {
		total = total.Add(payment.Amount)
	}
	return total
}

// HasPayments returns true if any installment has been recorded
func (c *Credit) HasPayments() bool {
	return len(c.Payments) > 0
}

// IsPaid returns true if the credit is fully paid
func (c *Credit) IsPaid() bool {
	return c.Status == CreditStatusPaid
}

// IsOverdue returns true if the credit is pending past its due date
func (c *Credit) IsOverdue(now time.Time) bool {
	return c.Status == CreditStatusPending && now.After(c.DueDate)
}

// ProportionalCost recognizes cost of goods in proportion to the amount
// collected: costPrice * (totalPaid / price).
func (c *Credit) ProportionalCost() decimal.Decimal {
	if c.Price.IsZero() {
		return decimal.Zero
	}
	return c.CostPrice.Mul(c.TotalPaid()).Div(c.Price)
}

// RealProfit returns collections minus proportionally recognized cost
func (c *Credit) RealProfit() decimal.Decimal {
	return c.TotalPaid().Sub(c.ProportionalCost())
}

// ExpectedProfit returns the profit if the credit is collected in full
func (c *Credit) ExpectedProfit() decimal.Decimal {
	return c.Price.Sub(c.CostPrice)
}

// CollectionRate returns totalPaid / price as a fraction, zero-guarded
func (c *Credit) CollectionRate() decimal.Decimal {
	if c.Price.IsZero() {
		return decimal.Zero
	}
	return c.TotalPaid().Div(c.Price)
}

// SetNotes sets the credit notes
func (c *Credit) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
}
