package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest represents a request to record a sale
type CreateSaleRequest struct {
	ClientName    string                `json:"client_name" binding:"required,min=1,max=200"`
	ClientPhone   string                `json:"client_phone" binding:"max=30"`
	StaffID       uuid.UUID             `json:"staff_id" binding:"required"`
	Commission    decimal.Decimal       `json:"commission"`
	Discount      decimal.Decimal       `json:"discount"`
	PaymentMethod string                `json:"payment_method" binding:"required,payment_method"`
	Notes         string                `json:"notes" binding:"max=500"`
	Items         []CreateSaleItemInput `json:"items" binding:"required,min=1"`
}

// CreateSaleItemInput represents a line in the create sale request
type CreateSaleItemInput struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

// AddCommissionDiscountRequest represents a bulk commission adjustment
// against a staff member's completed-sale history
type AddCommissionDiscountRequest struct {
	StaffID uuid.UUID       `json:"staff_id" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Reason  string          `json:"reason" binding:"required,min=1,max=200"`
}

// SaleListFilter represents filtering options for listing sales
type SaleListFilter struct {
	Page     int        `form:"page"`
	PageSize int        `form:"page_size"`
	StaffID  *uuid.UUID `form:"staff_id"`
	Status   *string    `form:"status"`
	Search   string     `form:"search"`
}

// SaleItemResponse represents a sale line item in responses
type SaleItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CommissionDiscountResponse represents a commission discount record
type CommissionDiscountResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	AppliedAt time.Time       `json:"applied_at"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID                  uuid.UUID                    `json:"id"`
	ClientName          string                       `json:"client_name"`
	ClientPhone         string                       `json:"client_phone,omitempty"`
	StaffID             uuid.UUID                    `json:"staff_id"`
	StaffName           string                       `json:"staff_name"`
	Commission          decimal.Decimal              `json:"commission"`
	Discount            decimal.Decimal              `json:"discount"`
	Subtotal            decimal.Decimal              `json:"subtotal"`
	Total               decimal.Decimal              `json:"total"`
	PaymentMethod       string                       `json:"payment_method"`
	Status              string                       `json:"status"`
	Notes               string                       `json:"notes,omitempty"`
	CommissionDiscounts []CommissionDiscountResponse `json:"commission_discounts"`
	Items               []SaleItemResponse           `json:"items"`
	CreatedAt           time.Time                    `json:"created_at"`
	CancelledAt         *time.Time                   `json:"cancelled_at,omitempty"`
}

// StaffCommissionSummary aggregates commission figures for one staff member
type StaffCommissionSummary struct {
	StaffID          uuid.UUID       `json:"staff_id"`
	StaffName        string          `json:"staff_name"`
	CompletedSales   int             `json:"completed_sales"`
	TotalSold        decimal.Decimal `json:"total_sold"`
	BaseCommission   decimal.Decimal `json:"base_commission"`
	DiscountsApplied decimal.Decimal `json:"discounts_applied"`
	NetCommission    decimal.Decimal `json:"net_commission"`
}

// ToSaleResponse converts a Sale aggregate to a response DTO
func ToSaleResponse(sale *sales.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal,
		}
	}

	discounts := make([]CommissionDiscountResponse, len(sale.CommissionDiscounts))
	for i, d := range sale.CommissionDiscounts {
		discounts[i] = CommissionDiscountResponse{
			Amount:    d.Amount,
			Reason:    d.Reason,
			AppliedAt: d.AppliedAt,
		}
	}

	return SaleResponse{
		ID:                  sale.ID,
		ClientName:          sale.ClientName,
		ClientPhone:         sale.ClientPhone,
		StaffID:             sale.StaffID,
		StaffName:           sale.StaffName,
		Commission:          sale.Commission,
		Discount:            sale.Discount,
		Subtotal:            sale.Subtotal,
		Total:               sale.Total,
		PaymentMethod:       sale.PaymentMethod.String(),
		Status:              sale.Status.String(),
		Notes:               sale.Notes,
		CommissionDiscounts: discounts,
		Items:               items,
		CreatedAt:           sale.CreatedAt,
		CancelledAt:         sale.CancelledAt,
	}
}
