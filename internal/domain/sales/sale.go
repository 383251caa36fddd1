package sales

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// SaleStatus represents the status of a sale
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "COMPLETED"
	SaleStatusCancelled SaleStatus = "CANCELLED"
)

// IsValid checks if the status is a valid SaleStatus
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusCompleted, SaleStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of SaleStatus
func (s SaleStatus) String() string {
	return string(s)
}

// CommissionDiscount is a retroactive reduction applied against a staff
// member's earned commission, recorded on the sale history
type CommissionDiscount struct {
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	AppliedAt time.Time       `json:"applied_at"`
}

// CommissionDiscounts is the ordered list of discounts recorded on a sale.
// Stored as a JSON column.
type CommissionDiscounts []CommissionDiscount

// Value implements driver.Valuer for database storage
func (d CommissionDiscounts) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (d *CommissionDiscounts) Scan(value any) error {
	if value == nil {
		*d = CommissionDiscounts{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into CommissionDiscounts", value)
	}

	if len(data) == 0 {
		*d = CommissionDiscounts{}
		return nil
	}
	return json.Unmarshal(data, d)
}

// Total returns the sum of all discount amounts
func (d CommissionDiscounts) Total() decimal.Decimal {
	total := decimal.Zero
	for _, discount := range d {
		total = total.Add(discount.Amount)
	}
	return total
}

// SaleItem represents a line item in a sale.
// Product name, unit price and unit cost are denormalized snapshots captured
// at sale time; later edits of the Product record never affect them.
type SaleItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"size:200;not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt   time.Time
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// NewSaleItem creates a new sale line item
func NewSaleItem(saleID, productID uuid.UUID, productName string, quantity int, price, costPrice valueobject.Money) (*SaleItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Unit price cannot be negative")
	}
	if costPrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Unit cost cannot be negative")
	}

	return &SaleItem{
		ID:          uuid.New(),
		SaleID:      saleID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       price.Amount(),
		CostPrice:   costPrice.Amount(),
		Subtotal:    price.Amount().Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt:   time.Now(),
	}, nil
}

// CostTotal returns the snapshotted cost of goods for this line
func (i *SaleItem) CostTotal() decimal.Decimal {
	return i.CostPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale represents a completed point-of-sale transaction aggregate root.
// A sale is created COMPLETED together with its items and the matching
// stock decrements; cancellation is its only legal state transition.
type Sale struct {
	shared.BaseAggregateRoot
	ClientName          string          `gorm:"size:200;not null"`
	ClientPhone         string          `gorm:"size:30"`
	StaffID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	StaffName           string          `gorm:"size:200;not null"`
	Commission          decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"` // percent, 0-100
	Discount            decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Subtotal            decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Total               decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	PaymentMethod       valueobject.PaymentMethod `gorm:"size:20;not null"`
	Status              SaleStatus                `gorm:"size:20;not null;index"`
	Notes               string                    `gorm:"size:500"`
	CommissionDiscounts CommissionDiscounts       `gorm:"type:text;not null"`
	CancelledAt         *time.Time
	Items               []SaleItem `gorm:"foreignKey:SaleID;references:ID"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a new sale in COMPLETED status with no items yet.
// Items are added with AddItem before the sale is persisted.
func NewSale(clientName, clientPhone string, staffID uuid.UUID, staffName string, commission decimal.Decimal, paymentMethod valueobject.PaymentMethod) (*Sale, error) {
	if clientName == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name cannot be empty")
	}
	if staffID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STAFF", "Staff ID cannot be empty")
	}
	if staffName == "" {
		return nil, shared.NewDomainError("INVALID_STAFF_NAME", "Staff name cannot be empty")
	}
	if commission.IsNegative() || commission.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Commission percent must be between 0 and 100")
	}
	if !paymentMethod.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}

	sale := &Sale{
		BaseAggregateRoot:   shared.NewBaseAggregateRoot(),
		ClientName:          clientName,
		ClientPhone:         clientPhone,
		StaffID:             staffID,
		StaffName:           staffName,
		Commission:          commission,
		Discount:            decimal.Zero,
		Subtotal:            decimal.Zero,
		Total:               decimal.Zero,
		PaymentMethod:       paymentMethod,
		Status:              SaleStatusCompleted,
		CommissionDiscounts: CommissionDiscounts{},
		Items:               make([]SaleItem, 0),
	}

	return sale, nil
}

// AddItem adds a line item with price and cost snapshots and recalculates totals
func (s *Sale) AddItem(productID uuid.UUID, productName string, quantity int, price, costPrice valueobject.Money) (*SaleItem, error) {
	item, err := NewSaleItem(s.ID, productID, productName, quantity, price, costPrice)
	if err != nil {
		return nil, err
	}

	s.Items = append(s.Items, *item)
	s.recalculateTotals()
	s.UpdatedAt = time.Now()

	return item, nil
}

// ApplyDiscount applies a currency discount to the sale total
func (s *Sale) ApplyDiscount(discount valueobject.Money) error {
	if discount.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Discount cannot be negative")
	}
	if discount.Amount().GreaterThan(s.Subtotal) {
		return shared.NewDomainError("VALIDATION_ERROR", "Discount cannot exceed subtotal")
	}

	s.Discount = discount.Amount()
	s.Total = s.Subtotal.Sub(s.Discount)
	s.UpdatedAt = time.Now()

	return nil
}

// SetNotes sets the sale notes
func (s *Sale) SetNotes(notes string) {
	s.Notes = notes
	s.UpdatedAt = time.Now()
}

// Complete marks the sale as final and emits the completion event.
// Requires at least one item.
func (s *Sale) Complete() error {
	if len(s.Items) == 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Sale must contain at least one item")
	}

	s.AddDomainEvent(NewSaleCompletedEvent(s))

	return nil
}

// Cancel cancels the sale. Cancellation is terminal: a cancelled sale
// cannot be cancelled again, so stock is never restored twice.
func (s *Sale) Cancel() error {
	if s.Status != SaleStatusCompleted {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel sale in %s status", s.Status))
	}

	now := time.Now()
	s.Status = SaleStatusCancelled
	s.CancelledAt = &now
	s.UpdatedAt = now

	s.AddDomainEvent(NewSaleCancelledEvent(s))

	return nil
}

// ApplyCommissionDiscount records a commission discount against this sale.
// Only COMPLETED sales carry commission, so discounts target those.
func (s *Sale) ApplyCommissionDiscount(amount decimal.Decimal, reason string, appliedAt time.Time) error {
	if s.Status != SaleStatusCompleted {
		return shared.NewDomainError("INVALID_STATE", "Commission discounts apply to completed sales only")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("VALIDATION_ERROR", "Discount amount must be positive")
	}

	s.CommissionDiscounts = append(s.CommissionDiscounts, CommissionDiscount{
		Amount:    amount,
		Reason:    reason,
		AppliedAt: appliedAt,
	})
	s.UpdatedAt = time.Now()

	return nil
}

// ClearCommission resets the commission percent and discount history.
// Used as a period-close operation; applies regardless of status.
func (s *Sale) ClearCommission() {
	s.Commission = decimal.Zero
	s.CommissionDiscounts = CommissionDiscounts{}
	s.UpdatedAt = time.Now()
}

// recalculateTotals recalculates subtotal and total from the items
func (s *Sale) recalculateTotals() {
	subtotal := decimal.Zero
	for _, item := range s.Items {
		subtotal = subtotal.Add(item.Subtotal)
	}
	s.Subtotal = subtotal
	s.Total = s.Subtotal.Sub(s.Discount)
}

// BaseCommission returns total * commission percent
func (s *Sale) BaseCommission() decimal.Decimal {
	return s.Total.Mul(s.Commission).Div(decimal.NewFromInt(100))
}

// NetCommission returns the base commission minus all recorded discounts.
// Discounts fan out across a staff member's sale history, so summing this
// over all of a staff member's sales yields total compensation.
func (s *Sale) NetCommission() decimal.Decimal {
	return s.BaseCommission().Sub(s.CommissionDiscounts.Total())
}

// CostOfGoods returns the snapshotted cost of all items
func (s *Sale) CostOfGoods() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.CostTotal())
	}
	return total
}

// IsCompleted returns true if the sale is completed
func (s *Sale) IsCompleted() bool {
	return s.Status == SaleStatusCompleted
}

// IsCancelled returns true if the sale is cancelled
func (s *Sale) IsCancelled() bool {
	return s.Status == SaleStatusCancelled
}

// ItemCount returns the number of line items
func (s *Sale) ItemCount() int {
	return len(s.Items)
}

// GetTotalMoney returns the sale total as Money
func (s *Sale) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyMXN(s.Total)
}
