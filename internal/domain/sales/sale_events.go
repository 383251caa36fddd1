package sales

import (
	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeSale = "Sale"

// Event type constants
const (
	EventTypeSaleCompleted = "SaleCompleted"
	EventTypeSaleCancelled = "SaleCancelled"
)

// SaleItemInfo represents item information for events
type SaleItemInfo struct {
	ItemID      uuid.UUID       `json:"item_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

func saleItemInfos(sale *Sale) []SaleItemInfo {
	items := make([]SaleItemInfo, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = SaleItemInfo{
			ItemID:      item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal,
		}
	}
	return items
}

// SaleCompletedEvent is raised when a sale is recorded
type SaleCompletedEvent struct {
	shared.BaseDomainEvent
	SaleID        uuid.UUID       `json:"sale_id"`
	ClientName    string          `json:"client_name"`
	StaffID       uuid.UUID       `json:"staff_id"`
	StaffName     string          `json:"staff_name"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Items         []SaleItemInfo  `json:"items"`
}

// NewSaleCompletedEvent creates a new SaleCompletedEvent
func NewSaleCompletedEvent(sale *Sale) *SaleCompletedEvent {
	return &SaleCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleCompleted, sale.ID, AggregateTypeSale),
		SaleID:          sale.ID,
		ClientName:      sale.ClientName,
		StaffID:         sale.StaffID,
		StaffName:       sale.StaffName,
		Total:           sale.Total,
		PaymentMethod:   sale.PaymentMethod.String(),
		Items:           saleItemInfos(sale),
	}
}

// SaleCancelledEvent is raised when a sale is cancelled and stock restored
type SaleCancelledEvent struct {
	shared.BaseDomainEvent
	SaleID uuid.UUID       `json:"sale_id"`
	Total  decimal.Decimal `json:"total"`
	Items  []SaleItemInfo  `json:"items"`
}

// NewSaleCancelledEvent creates a new SaleCancelledEvent
func NewSaleCancelledEvent(sale *Sale) *SaleCancelledEvent {
	return &SaleCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleCancelled, sale.ID, AggregateTypeSale),
		SaleID:          sale.ID,
		Total:           sale.Total,
		Items:           saleItemInfos(sale),
	}
}
