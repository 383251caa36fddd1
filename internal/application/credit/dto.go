package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/credit"
	"github.com/shopspring/decimal"
)

// IssueCreditRequest represents a request to issue a store credit
type IssueCreditRequest struct {
	ClientName  string          `json:"client_name" binding:"required,min=1,max=200"`
	ClientPhone string          `json:"client_phone" binding:"max=30"`
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	DueDate     time.Time       `json:"due_date" binding:"required"`
	Notes       string          `json:"notes" binding:"max=500"`
}

// AddPaymentRequest represents a request to record an installment
type AddPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required,payment_method"`
	Notes         string          `json:"notes" binding:"max=500"`
}

// CreditListFilter represents filtering options for listing credits
type CreditListFilter struct {
	Page     int     `form:"page"`
	PageSize int     `form:"page_size"`
	Status   *string `form:"status"`
	Search   string  `form:"search"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreditResponse represents a credit in API responses
type CreditResponse struct {
	ID              uuid.UUID         `json:"id"`
	ClientName      string            `json:"client_name"`
	ClientPhone     string            `json:"client_phone,omitempty"`
	ProductID       uuid.UUID         `json:"product_id"`
	ProductName     string            `json:"product_name"`
	CostPrice       decimal.Decimal   `json:"cost_price"`
	Price           decimal.Decimal   `json:"price"`
	RemainingAmount decimal.Decimal   `json:"remaining_amount"`
	TotalPaid       decimal.Decimal   `json:"total_paid"`
	Status          string            `json:"status"`
	DueDate         time.Time         `json:"due_date"`
	Notes           string            `json:"notes,omitempty"`
	Payments        []PaymentResponse `json:"payments"`
	CreatedAt       time.Time         `json:"created_at"`
}

// ToCreditResponse converts a Credit aggregate to a response DTO
func ToCreditResponse(c *credit.Credit) CreditResponse {
	payments := make([]PaymentResponse, len(c.Payments))
	for i, p := range c.Payments {
		payments[i] = PaymentResponse{
			ID:            p.ID,
			Amount:        p.Amount,
			PaymentMethod: p.PaymentMethod.String(),
			Notes:         p.Notes,
			CreatedAt:     p.CreatedAt,
		}
	}

	return CreditResponse{
		ID:              c.ID,
		ClientName:      c.ClientName,
		ClientPhone:     c.ClientPhone,
		ProductID:       c.ProductID,
		ProductName:     c.ProductName,
		CostPrice:       c.CostPrice,
		Price:           c.Price,
		RemainingAmount: c.RemainingAmount,
		TotalPaid:       c.TotalPaid(),
		Status:          c.Status.String(),
		DueDate:         c.DueDate,
		Notes:           c.Notes,
		Payments:        payments,
		CreatedAt:       c.CreatedAt,
	}
}
