package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/partner"
	"github.com/salon/backend/internal/domain/sales"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// SalesService handles point-of-sale business operations
type SalesService struct {
	saleRepo  sales.Repository
	staffRepo partner.StaffRepository
	txScope   TransactionScope
}

// NewSalesService creates a new SalesService
func NewSalesService(saleRepo sales.Repository, staffRepo partner.StaffRepository, txScope TransactionScope) *SalesService {
	return &SalesService{
		saleRepo:  saleRepo,
		staffRepo: staffRepo,
		txScope:   txScope,
	}
}

// Create records a sale: the header, its items and the matching stock
// decrements are written in one transaction. Unit cost is snapshotted
// from the product at sale time; later product edits never affect it.
func (s *SalesService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Sale must contain at least one item")
	}
	if req.Discount.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Discount must not be negative")
	}

	staff, err := s.staffRepo.FindByID(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}

	method := valueobject.PaymentMethod(req.PaymentMethod)
	sale, err := sales.NewSale(req.ClientName, req.ClientPhone, staff.ID, staff.Name, req.Commission, method)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		sale.SetNotes(req.Notes)
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, line := range req.Items {
			product, err := repos.ProductRepo().FindByID(ctx, line.ProductID)
			if err != nil {
				return err
			}

			if _, err := sale.AddItem(product.ID, product.Name, line.Quantity,
				valueobject.NewMoneyMXN(line.Price), product.GetCostPriceMoney()); err != nil {
				return err
			}

			if err := product.DecreaseStock(line.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}
		}

		if req.Discount.IsPositive() {
			if err := sale.ApplyDiscount(valueobject.NewMoneyMXN(req.Discount)); err != nil {
				return err
			}
		}

		if err := sale.Complete(); err != nil {
			return err
		}

		return repos.SaleRepo().Save(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// GetByID retrieves a sale by ID
func (s *SalesService) GetByID(ctx context.Context, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	response := ToSaleResponse(sale)
	return &response, nil
}

// List retrieves sales with filtering and pagination
func (s *SalesService) List(ctx context.Context, filter SaleListFilter) ([]SaleResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.StaffID != nil {
		domainFilter.Filters["staff_id"] = *filter.StaffID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = *filter.Status
	}

	saleList, err := s.saleRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.saleRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SaleResponse, len(saleList))
	for i := range saleList {
		responses[i] = ToSaleResponse(&saleList[i])
	}
	return responses, total, nil
}

// Cancel cancels a sale and restores the stock of every item, all in
// one transaction. A sale can only be cancelled once; the status guard
// prevents restoring stock twice.
func (s *SalesService) Cancel(ctx context.Context, saleID uuid.UUID) (*SaleResponse, error) {
	var sale *sales.Sale

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		sale, err = repos.SaleRepo().FindByID(ctx, saleID)
		if err != nil {
			return err
		}

		if err := sale.Cancel(); err != nil {
			return err
		}

		for _, item := range sale.Items {
			product, err := repos.ProductRepo().FindByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if err := product.IncreaseStock(item.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}
		}

		return repos.SaleRepo().Save(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// AddCommissionDiscount appends a discount record to every completed
// sale of the staff member. One discount event fans out across the full
// completed-sale history as a bulk adjustment; all updates commit
// atomically.
func (s *SalesService) AddCommissionDiscount(ctx context.Context, req AddCommissionDiscountRequest) (int, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return 0, shared.NewDomainError("VALIDATION_ERROR", "Discount amount must be positive")
	}
	if req.Reason == "" {
		return 0, shared.NewDomainError("VALIDATION_ERROR", "Discount reason cannot be empty")
	}

	if _, err := s.staffRepo.FindByID(ctx, req.StaffID); err != nil {
		return 0, err
	}

	appliedAt := time.Now()
	affected := 0

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		completed, err := repos.SaleRepo().FindCompletedByStaff(ctx, req.StaffID)
		if err != nil {
			return err
		}

		for i := range completed {
			sale := &completed[i]
			if err := sale.ApplyCommissionDiscount(req.Amount, req.Reason, appliedAt); err != nil {
				return err
			}
			if err := repos.SaleRepo().Save(ctx, sale); err != nil {
				return err
			}
		}

		affected = len(completed)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// ClearStaffCommissions resets commission and discount history on every
// sale of the staff member regardless of status. Irreversible; intended
// as a period-close operation.
func (s *SalesService) ClearStaffCommissions(ctx context.Context, staffID uuid.UUID) (int, error) {
	if _, err := s.staffRepo.FindByID(ctx, staffID); err != nil {
		return 0, err
	}

	affected := 0
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		saleList, err := repos.SaleRepo().FindByStaff(ctx, staffID)
		if err != nil {
			return err
		}

		for i := range saleList {
			sale := &saleList[i]
			sale.ClearCommission()
			if err := repos.SaleRepo().Save(ctx, sale); err != nil {
				return err
			}
		}

		affected = len(saleList)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// GetStaffCommissionSummary computes a staff member's commission totals
// over their completed sales. Net commission sums per-sale base minus
// per-sale discounts, so fanned-out discounts count once per sale.
func (s *SalesService) GetStaffCommissionSummary(ctx context.Context, staffID uuid.UUID) (*StaffCommissionSummary, error) {
	staff, err := s.staffRepo.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	completed, err := s.saleRepo.FindCompletedByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	summary := &StaffCommissionSummary{
		StaffID:   staff.ID,
		StaffName: staff.Name,
	}
	for i := range completed {
		sale := &completed[i]
		summary.CompletedSales++
		summary.TotalSold = summary.TotalSold.Add(sale.Total)
		summary.BaseCommission = summary.BaseCommission.Add(sale.BaseCommission())
		summary.DiscountsApplied = summary.DiscountsApplied.Add(sale.CommissionDiscounts.Total())
		summary.NetCommission = summary.NetCommission.Add(sale.NetCommission())
	}

	return summary, nil
}
