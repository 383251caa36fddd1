package credit

import (
	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeCredit = "Credit"

// Event type constants
const (
	EventTypeCreditIssued   = "CreditIssued"
	EventTypeCreditPaid     = "CreditPaid"
	EventTypePaymentApplied = "PaymentApplied"
)

// CreditIssuedEvent is raised when a credit is issued
type CreditIssuedEvent struct {
	shared.BaseDomainEvent
	CreditID    uuid.UUID       `json:"credit_id"`
	ClientName  string          `json:"client_name"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
}

// NewCreditIssuedEvent creates a new CreditIssuedEvent
func NewCreditIssuedEvent(credit *Credit) *CreditIssuedEvent {
	return &CreditIssuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCreditIssued, credit.ID, AggregateTypeCredit),
		CreditID:        credit.ID,
		ClientName:      credit.ClientName,
		ProductID:       credit.ProductID,
		ProductName:     credit.ProductName,
		Price:           credit.Price,
	}
}

// PaymentAppliedEvent is raised when an installment is recorded
type PaymentAppliedEvent struct {
	shared.BaseDomainEvent
	CreditID        uuid.UUID       `json:"credit_id"`
	PaymentID       uuid.UUID       `json:"payment_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"payment_method"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

// NewPaymentAppliedEvent creates a new PaymentAppliedEvent
func NewPaymentAppliedEvent(credit *Credit, payment *Payment) *PaymentAppliedEvent {
	return &PaymentAppliedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentApplied, credit.ID, AggregateTypeCredit),
		CreditID:        credit.ID,
		PaymentID:       payment.ID,
		Amount:          payment.Amount,
		PaymentMethod:   payment.PaymentMethod.String(),
		RemainingAmount: credit.RemainingAmount,
	}
}

// CreditPaidEvent is raised when a credit's balance reaches zero
type CreditPaidEvent struct {
	shared.BaseDomainEvent
	CreditID   uuid.UUID       `json:"credit_id"`
	ClientName string          `json:"client_name"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
}

// NewCreditPaidEvent creates a new CreditPaidEvent
func NewCreditPaidEvent(credit *Credit) *CreditPaidEvent {
	return &CreditPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCreditPaid, credit.ID, AggregateTypeCredit),
		CreditID:        credit.ID,
		ClientName:      credit.ClientName,
		TotalPaid:       credit.Price.Sub(credit.RemainingAmount),
	}
}
