package credit

import (
	"context"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/catalog"
	"github.com/salon/backend/internal/domain/credit"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
)

// CreditService handles store-credit business operations
type CreditService struct {
	creditRepo  credit.Repository
	productRepo catalog.ProductRepository
	txScope     TransactionScope
}

// NewCreditService creates a new CreditService
func NewCreditService(creditRepo credit.Repository, productRepo catalog.ProductRepository, txScope TransactionScope) *CreditService {
	return &CreditService{
		creditRepo:  creditRepo,
		productRepo: productRepo,
		txScope:     txScope,
	}
}

// Issue creates a credit for the agreed price. The product is used only
// to snapshot its cost price; no stock is reserved or decremented.
func (s *CreditService) Issue(ctx context.Context, req IssueCreditRequest) (*CreditResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	c, err := credit.NewCredit(req.ClientName, req.ClientPhone, product.ID, product.Name,
		product.GetCostPriceMoney(), valueobject.NewMoneyMXN(req.Price), req.DueDate)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		c.SetNotes(req.Notes)
	}

	if err := s.creditRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCreditResponse(c)
	return &response, nil
}

// GetByID retrieves a credit with its payments
func (s *CreditService) GetByID(ctx context.Context, creditID uuid.UUID) (*CreditResponse, error) {
	c, err := s.creditRepo.FindByID(ctx, creditID)
	if err != nil {
		return nil, err
	}
	response := ToCreditResponse(c)
	return &response, nil
}

// List retrieves credits with filtering and pagination
func (s *CreditService) List(ctx context.Context, filter CreditListFilter) ([]CreditResponse, int64, error) {
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
	if filter.Status != nil {
		domainFilter.Filters["status"] = *filter.Status
	}

	credits, err := s.creditRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.creditRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CreditResponse, len(credits))
	for i := range credits {
		responses[i] = ToCreditResponse(&credits[i])
	}
	return responses, total, nil
}

// AddPayment records an installment against the credit. The payment row
// and the recomputed balance are written in one transaction: both or
// neither.
func (s *CreditService) AddPayment(ctx context.Context, creditID uuid.UUID, req AddPaymentRequest) (*CreditResponse, error) {
	var c *credit.Credit

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		c, err = repos.CreditRepo().FindByID(ctx, creditID)
		if err != nil {
			return err
		}

		method := valueobject.PaymentMethod(req.PaymentMethod)
		if _, err := c.ApplyPayment(valueobject.NewMoneyMXN(req.Amount), method, req.Notes); err != nil {
			return err
		}

		return repos.CreditRepo().Save(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	response := ToCreditResponse(c)
	return &response, nil
}

// Delete removes a credit and cascades to its payments. Deleting a
// credit with recorded payments discards payment history, so it is
// refused unless force is set.
func (s *CreditService) Delete(ctx context.Context, creditID uuid.UUID, force bool) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		c, err := repos.CreditRepo().FindByID(ctx, creditID)
		if err != nil {
			return err
		}

		if c.HasPayments() && !force {
			return shared.NewDomainError("HAS_PAYMENTS", "Credit has recorded payments; deletion discards payment history")
		}

		return repos.CreditRepo().Delete(ctx, c.ID)
	})
}
