package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/catalog"
	"github.com/salon/backend/internal/domain/credit"
	"github.com/salon/backend/internal/domain/finance"
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

// MockExpenseRepository is a mock implementation of finance.ExpenseRepository
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]finance.Expense, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCreditRepository is a mock implementation of credit.Repository
type MockCreditRepository struct {
	mock.Mock
}

func (m *MockCreditRepository) FindByID(ctx context.Context, id uuid.UUID) (*credit.Credit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credit.Credit), args.Error(1)
}

func (m *MockCreditRepository) FindAll(ctx context.Context, filter shared.Filter) ([]credit.Credit, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]credit.Credit), args.Error(1)
}

func (m *MockCreditRepository) FindByStatus(ctx context.Context, status credit.CreditStatus) ([]credit.Credit, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]credit.Credit), args.Error(1)
}

func (m *MockCreditRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCreditRepository) Save(ctx context.Context, c *credit.Credit) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCreditRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
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

func buildSale(t *testing.T, total float64, commission float64) sales.Sale {
	t.Helper()
	sale, err := sales.NewSale("Client", "", uuid.New(), "Staff",
		decimal.NewFromFloat(commission), valueobject.PaymentMethodCash)
	require.NoError(t, err)
	_, err = sale.AddItem(uuid.New(), "Item", 1,
		valueobject.NewMoneyMXNFromFloat(total), valueobject.NewMoneyMXNFromFloat(total/2))
	require.NoError(t, err)
	return *sale
}

func TestFinancialReportService_IncomeStatement(t *testing.T) {
	saleRepo := new(MockSaleRepository)
	expenseRepo := new(MockExpenseRepository)

	saleList := []sales.Sale{buildSale(t, 1000, 10), buildSale(t, 500, 10)}
	expense, err := finance.NewExpense(time.Now(), "rent",
		valueobject.NewMoneyMXNFromFloat(300), "")
	require.NoError(t, err)

	saleRepo.On("FindAll", mock.Anything, mock.Anything).Return(saleList, nil)
	expenseRepo.On("FindAll", mock.Anything, mock.Anything).Return([]finance.Expense{*expense}, nil)

	service := NewFinancialReportService(saleRepo, expenseRepo)
	statement, err := service.IncomeStatement(context.Background(), DateRangeFilter{})

	require.NoError(t, err)
	assert.Equal(t, "1500", statement.GrossSales.String())
	assert.Equal(t, "300", statement.OperatingExpenses.String())
	assert.Equal(t, 2, statement.CompletedSalesCount)
}

func TestFinancialReportService_WindowFiltering(t *testing.T) {
	saleRepo := new(MockSaleRepository)
	expenseRepo := new(MockExpenseRepository)

	recent := buildSale(t, 1000, 0)
	old := buildSale(t, 9999, 0)
	old.CreatedAt = time.Now().AddDate(0, -2, 0)

	from := time.Now().AddDate(0, -1, 0)
	saleRepo.On("FindAll", mock.Anything, mock.Anything).Return([]sales.Sale{recent, old}, nil)
	expenseRepo.On("FindByDateRange", mock.Anything, from, mock.Anything).Return([]finance.Expense{}, nil)

	service := NewFinancialReportService(saleRepo, expenseRepo)
	statement, err := service.IncomeStatement(context.Background(), DateRangeFilter{From: from})

	require.NoError(t, err)
	assert.Equal(t, "1000", statement.GrossSales.String())
	assert.Equal(t, 1, statement.CompletedSalesCount)
}

func TestCreditReportService_Profitability(t *testing.T) {
	creditRepo := new(MockCreditRepository)

	paid, err := credit.NewCredit("Maria", "", uuid.New(), "Dryer",
		valueobject.NewMoneyMXNFromFloat(200), valueobject.NewMoneyMXNFromFloat(500),
		time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	_, err = paid.ApplyPayment(valueobject.NewMoneyMXNFromFloat(500), valueobject.PaymentMethodCash, "")
	require.NoError(t, err)

	partial, err := credit.NewCredit("Sofia", "", uuid.New(), "Iron",
		valueobject.NewMoneyMXNFromFloat(100), valueobject.NewMoneyMXNFromFloat(400),
		time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	_, err = partial.ApplyPayment(valueobject.NewMoneyMXNFromFloat(100), valueobject.PaymentMethodCash, "")
	require.NoError(t, err)

	creditRepo.On("FindAll", mock.Anything, mock.Anything).Return([]credit.Credit{*paid, *partial}, nil)

	service := NewCreditReportService(creditRepo)
	report, err := service.Profitability(context.Background(), DateRangeFilter{})

	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "900", report.TotalFinanced.String())
	assert.Equal(t, "600", report.TotalCollected.String())
	assert.Equal(t, "300", report.TotalOutstanding.String())
	// 200 + 100*(100/400) = 225
	assert.Equal(t, "225", report.TotalProportionalCost.String())
	assert.Equal(t, "375", report.TotalRealProfit.String())
	assert.Equal(t, 1, report.PaidCount)
	assert.Equal(t, 1, report.PendingCount)
}

func TestInventoryReportService_Valuation(t *testing.T) {
	productRepo := new(MockProductRepository)

	healthy, err := catalog.NewProduct("P-1", "Shampoo", uuid.New(),
		valueobject.NewMoneyMXNFromFloat(40), valueobject.NewMoneyMXNFromFloat(100), 10, 2)
	require.NoError(t, err)
	low, err := catalog.NewProduct("P-2", "Conditioner", uuid.New(),
		valueobject.NewMoneyMXNFromFloat(30), valueobject.NewMoneyMXNFromFloat(80), 1, 3)
	require.NoError(t, err)

	productRepo.On("FindAll", mock.Anything, mock.Anything).Return([]catalog.Product{*healthy, *low}, nil)

	service := NewInventoryReportService(productRepo)
	report, err := service.Valuation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, report.ProductCount)
	assert.Equal(t, 11, report.TotalUnits)
	assert.Equal(t, "430", report.CostValue.String())
	assert.Equal(t, "1080", report.RetailValue.String())
	require.Len(t, report.LowStockItems, 1)
	assert.Equal(t, "Conditioner", report.LowStockItems[0].Name)
}
