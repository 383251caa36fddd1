package sales

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/catalog"
	"github.com/salon/backend/internal/domain/partner"
	"github.com/salon/backend/internal/domain/sales"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSaleRepository is a mock implementation of sales.Repository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Sale, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindByStaff(ctx context.Context, staffID uuid.UUID) ([]sales.Sale, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindCompletedByStaff(ctx context.Context, staffID uuid.UUID) ([]sales.Sale, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindLowStock(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStaffRepository is a mock implementation of partner.StaffRepository
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindByCode(ctx context.Context, code string) (*partner.Staff, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Staff, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Staff), args.Error(1)
}

func (m *MockStaffRepository) Save(ctx context.Context, staff *partner.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestProduct(t *testing.T, name string, costPrice, salePrice float64, stock int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("P-"+name, name, uuid.New(),
		valueobject.NewMoneyMXNFromFloat(costPrice),
		valueobject.NewMoneyMXNFromFloat(salePrice), stock, 1)
	require.NoError(t, err)
	return product
}

func newTestStaff(t *testing.T) *partner.Staff {
	t.Helper()
	staff, err := partner.NewStaff("S-001", "Lucia", "555-0303")
	require.NoError(t, err)
	return staff
}

func newService(saleRepo *MockSaleRepository, productRepo *MockProductRepository, staffRepo *MockStaffRepository) *SalesService {
	scope := NewNoOpTransactionScope(saleRepo, productRepo)
	return NewSalesService(saleRepo, staffRepo, scope)
}

func TestSalesService_Create(t *testing.T) {
	t.Run("creates sale and decrements stock", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		productRepo := new(MockProductRepository)
		staffRepo := new(MockStaffRepository)

		staff := newTestStaff(t)
		product := newTestProduct(t, "Shampoo", 40, 100, 10)

		staffRepo.On("FindByID", mock.Anything, staff.ID).Return(staff, nil)
		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		productRepo.On("Save", mock.Anything, product).Return(nil)
		saleRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Sale")).Return(nil)

		service := newService(saleRepo, productRepo, staffRepo)
		resp, err := service.Create(context.Background(), CreateSaleRequest{
			ClientName:    "Ana Torres",
			StaffID:       staff.ID,
			Commission:    decimal.NewFromInt(10),
			PaymentMethod: "CASH",
			Items: []CreateSaleItemInput{
				{ProductID: product.ID, Quantity: 3, Price: decimal.NewFromInt(100)},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "300", resp.Total.String())
		assert.Equal(t, "COMPLETED", resp.Status)
		assert.Equal(t, 7, product.Stock)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Shampoo", resp.Items[0].ProductName)

		saleRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("applies discount to total", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		productRepo := new(MockProductRepository)
		staffRepo := new(MockStaffRepository)

		staff := newTestStaff(t)
		product := newTestProduct(t, "Shampoo", 40, 100, 10)

		staffRepo.On("FindByID", mock.Anything, staff.ID).Return(staff, nil)
		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		productRepo.On("Save", mock.Anything, product).Return(nil)
		saleRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Sale")).Return(nil)

		service := newService(saleRepo, productRepo, staffRepo)
		resp, err := service.Create(context.Background(), CreateSaleRequest{
			ClientName:    "Ana Torres",
			StaffID:       staff.ID,
			Discount:      decimal.NewFromInt(50),
			PaymentMethod: "CARD",
			Items: []CreateSaleItemInput{
				{ProductID: product.ID, Quantity: 3, Price: decimal.NewFromInt(100)},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "300", resp.Subtotal.String())
		assert.Equal(t, "250", resp.Total.String())
	})

	t.Run("rejects negative discount", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		productRepo := new(MockProductRepository)
		staffRepo := new(MockStaffRepository)

		service := newService(saleRepo, productRepo, staffRepo)
		_, err := service.Create(context.Background(), CreateSaleRequest{
			ClientName:    "Ana Torres",
			StaffID:       uuid.New(),
			Discount:      decimal.NewFromInt(-50),
			PaymentMethod: "CASH",
			Items: []CreateSaleItemInput{
				{ProductID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(100)},
			},
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("fails with insufficient stock and saves nothing", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		productRepo := new(MockProductRepository)
		staffRepo := new(MockStaffRepository)

		staff := newTestStaff(t)
		product := newTestProduct(t, "Shampoo", 40, 100, 2)

		staffRepo.On("FindByID", mock.Anything, staff.ID).Return(staff, nil)
		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		service := newService(saleRepo, productRepo, staffRepo)
		_, err := service.Create(context.Background(), CreateSaleRequest{
			ClientName:    "Ana Torres",
			StaffID:       staff.ID,
			PaymentMethod: "CASH",
			Items: []CreateSaleItemInput{
				{ProductID: product.ID, Quantity: 3, Price: decimal.NewFromInt(100)},
			},
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)

		saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("fails when product is missing", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		productRepo := new(MockProductRepository)
		staffRepo := new(MockStaffRepository)

		staff := newTestStaff(t)
		missingID := uuid.New()

		staffRepo.On("FindByID", mock.Anything, staff.ID).Return(staff, nil)
		productRepo.On("FindByID", mock.Anything, missingID).Return(nil, shared.ErrNotFound)

		service := newService(saleRepo, productRepo, staffRepo)
		_, err := service.Create(context.Background(), CreateSaleRequest{
			ClientName:    "Ana Torres",
			StaffID:       staff.ID,
			PaymentMethod: "CASH",
			Items: []CreateSaleItemInput{
				{ProductID: missingID, Quantity: 1, Price: decimal.NewFromInt(100)},
			},
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		service := newService(new(MockSaleRepository), new(MockProductRepository), new(MockStaffRepository))
		_, err := service.Create(context.Background(), CreateSaleRequest{
			ClientName:    "Ana Torres",
			StaffID:       uuid.New(),
			PaymentMethod: "CASH",
		})
		assert.Error(t, err)
	})
}

func TestSalesService_Cancel(t *testing.T) {
	buildCompletedSale := func(t *testing.T, staffID, productID uuid.UUID) *sales.Sale {
		sale, err := sales.NewSale("Ana Torres", "", staffID, "Lucia",
			decimal.NewFromInt(10), valueobject.PaymentMethodCash)
		require.NoError(t, err)
		_, err = sale.AddItem(productID, "Shampoo", 3,
			valueobject.NewMoneyMXNFromFloat(100), valueobject.NewMoneyMXNFromFloat(40))
		require.NoError(t, err)
		return sale
	}

	t.Run("cancels sale and restores stock", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		productRepo := new(MockProductRepository)
		staffRepo := new(MockStaffRepository)

		product := newTestProduct(t, "Shampoo", 40, 100, 7)
		sale := buildCompletedSale(t, uuid.New(), product.ID)

		saleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		productRepo.On("Save", mock.Anything, product).Return(nil)
		saleRepo.On("Save", mock.Anything, sale).Return(nil)

		service := newService(saleRepo, productRepo, staffRepo)
		resp, err := service.Cancel(context.Background(), sale.ID)

		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", resp.Status)
		assert.Equal(t, 10, product.Stock)
	})

	t.Run("rejects cancelling twice without touching stock", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		productRepo := new(MockProductRepository)
		staffRepo := new(MockStaffRepository)

		sale := buildCompletedSale(t, uuid.New(), uuid.New())
		require.NoError(t, sale.Cancel())

		saleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)

		service := newService(saleRepo, productRepo, staffRepo)
		_, err := service.Cancel(context.Background(), sale.ID)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestSalesService_AddCommissionDiscount(t *testing.T) {
	buildStaffSale := func(t *testing.T, staffID uuid.UUID, total float64) sales.Sale {
		sale, err := sales.NewSale("Client", "", staffID, "Lucia",
			decimal.NewFromInt(10), valueobject.PaymentMethodCash)
		require.NoError(t, err)
		_, err = sale.AddItem(uuid.New(), "Item", 1,
			valueobject.NewMoneyMXNFromFloat(total), valueobject.NewMoneyMXNFromFloat(0))
		require.NoError(t, err)
		return *sale
	}

	t.Run("fans out across all completed sales", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		productRepo := new(MockProductRepository)
		staffRepo := new(MockStaffRepository)

		staff := newTestStaff(t)
		saleA := buildStaffSale(t, staff.ID, 1000)
		saleB := buildStaffSale(t, staff.ID, 500)
		completed := []sales.Sale{saleA, saleB}

		staffRepo.On("FindByID", mock.Anything, staff.ID).Return(staff, nil)
		saleRepo.On("FindCompletedByStaff", mock.Anything, staff.ID).Return(completed, nil)
		saleRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Sale")).Return(nil)

		service := newService(saleRepo, productRepo, staffRepo)
		affected, err := service.AddCommissionDiscount(context.Background(), AddCommissionDiscountRequest{
			StaffID: staff.ID,
			Amount:  decimal.NewFromInt(30),
			Reason:  "cash advance",
		})

		require.NoError(t, err)
		assert.Equal(t, 2, affected)
		saleRepo.AssertNumberOfCalls(t, "Save", 2)

		// Net commission sums per-sale base minus the fanned-out discount:
		// (100-30)+(50-30) = 90
		net := decimal.Zero
		for i := range completed {
			net = net.Add(completed[i].NetCommission())
		}
		assert.Equal(t, "90", net.String())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		service := newService(new(MockSaleRepository), new(MockProductRepository), new(MockStaffRepository))
		_, err := service.AddCommissionDiscount(context.Background(), AddCommissionDiscountRequest{
			StaffID: uuid.New(),
			Amount:  decimal.Zero,
			Reason:  "x",
		})
		assert.Error(t, err)
	})

	t.Run("rejects empty reason", func(t *testing.T) {
		service := newService(new(MockSaleRepository), new(MockProductRepository), new(MockStaffRepository))
		_, err := service.AddCommissionDiscount(context.Background(), AddCommissionDiscountRequest{
			StaffID: uuid.New(),
			Amount:  decimal.NewFromInt(30),
		})
		assert.Error(t, err)
	})
}

func TestSalesService_ClearStaffCommissions(t *testing.T) {
	saleRepo := new(MockSaleRepository)
	productRepo := new(MockProductRepository)
	staffRepo := new(MockStaffRepository)

	staff := newTestStaff(t)
	sale, err := sales.NewSale("Client", "", staff.ID, "Lucia",
		decimal.NewFromInt(10), valueobject.PaymentMethodCash)
	require.NoError(t, err)
	_, err = sale.AddItem(uuid.New(), "Item", 1,
		valueobject.NewMoneyMXNFromFloat(1000), valueobject.NewMoneyMXNFromFloat(0))
	require.NoError(t, err)
	require.NoError(t, sale.ApplyCommissionDiscount(decimal.NewFromInt(30), "x", sale.CreatedAt))
	saleList := []sales.Sale{*sale}

	staffRepo.On("FindByID", mock.Anything, staff.ID).Return(staff, nil)
	saleRepo.On("FindByStaff", mock.Anything, staff.ID).Return(saleList, nil)
	saleRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Sale")).Return(nil)

	service := newService(saleRepo, productRepo, staffRepo)
	affected, err := service.ClearStaffCommissions(context.Background(), staff.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, affected)
	assert.True(t, saleList[0].Commission.IsZero())
	assert.Empty(t, saleList[0].CommissionDiscounts)
}

func TestSalesService_GetStaffCommissionSummary(t *testing.T) {
	saleRepo := new(MockSaleRepository)
	productRepo := new(MockProductRepository)
	staffRepo := new(MockStaffRepository)

	staff := newTestStaff(t)

	makeSale := func(total float64) sales.Sale {
		sale, err := sales.NewSale("Client", "", staff.ID, staff.Name,
			decimal.NewFromInt(10), valueobject.PaymentMethodCash)
		require.NoError(t, err)
		_, err = sale.AddItem(uuid.New(), "Item", 1,
			valueobject.NewMoneyMXNFromFloat(total), valueobject.NewMoneyMXNFromFloat(0))
		require.NoError(t, err)
		return *sale
	}

	saleA := makeSale(1000)
	saleB := makeSale(500)
	require.NoError(t, saleA.ApplyCommissionDiscount(decimal.NewFromInt(30), "x", saleA.CreatedAt))
	require.NoError(t, saleB.ApplyCommissionDiscount(decimal.NewFromInt(30), "x", saleB.CreatedAt))

	staffRepo.On("FindByID", mock.Anything, staff.ID).Return(staff, nil)
	saleRepo.On("FindCompletedByStaff", mock.Anything, staff.ID).Return([]sales.Sale{saleA, saleB}, nil)

	service := newService(saleRepo, productRepo, staffRepo)
	summary, err := service.GetStaffCommissionSummary(context.Background(), staff.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.CompletedSales)
	assert.Equal(t, "1500", summary.TotalSold.String())
	assert.Equal(t, "150", summary.BaseCommission.String())
	assert.Equal(t, "60", summary.DiscountsApplied.String())
	assert.Equal(t, "90", summary.NetCommission.String())
}
