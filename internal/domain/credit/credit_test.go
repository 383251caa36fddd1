package credit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCredit(t *testing.T, costPrice, price float64) *Credit {
	t.Helper()
	credit, err := NewCredit("Maria Lopez", "555-0202", uuid.New(), "Hair Dryer",
		valueobject.NewMoneyMXNFromFloat(costPrice),
		valueobject.NewMoneyMXNFromFloat(price),
		time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	return credit
}

func payTestCredit(t *testing.T, credit *Credit, amount float64) *Payment {
	t.Helper()
	payment, err := credit.ApplyPayment(valueobject.NewMoneyMXNFromFloat(amount),
		valueobject.PaymentMethodCash, "")
	require.NoError(t, err)
	return payment
}

func TestNewCredit(t *testing.T) {
	t.Run("creates credit with full balance outstanding", func(t *testing.T) {
		credit := createTestCredit(t, 200, 500)

		assert.Equal(t, CreditStatusPending, credit.Status)
		assert.Equal(t, "500", credit.Price.String())
		assert.Equal(t, "500", credit.RemainingAmount.String())
		assert.Equal(t, "200", credit.CostPrice.String())
		assert.Empty(t, credit.Payments)

		events := credit.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeCreditIssued, events[0].EventType())
	})

	t.Run("rejects empty client name", func(t *testing.T) {
		_, err := NewCredit("", "", uuid.New(), "Hair Dryer",
			valueobject.NewMoneyMXNFromFloat(200), valueobject.NewMoneyMXNFromFloat(500),
			time.Now().AddDate(0, 1, 0))
		assert.Error(t, err)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := NewCredit("Maria", "", uuid.New(), "Hair Dryer",
			valueobject.NewMoneyMXNFromFloat(200), valueobject.NewMoneyMXNFromFloat(0),
			time.Now().AddDate(0, 1, 0))
		assert.Error(t, err)
	})

	t.Run("rejects zero due date", func(t *testing.T) {
		_, err := NewCredit("Maria", "", uuid.New(), "Hair Dryer",
			valueobject.NewMoneyMXNFromFloat(200), valueobject.NewMoneyMXNFromFloat(500),
			time.Time{})
		assert.Error(t, err)
	})
}

func TestCredit_ApplyPayment(t *testing.T) {
	t.Run("full lifecycle through installments", func(t *testing.T) {
		credit := createTestCredit(t, 200, 500)

		payTestCredit(t, credit, 300)
		assert.Equal(t, "200", credit.RemainingAmount.String())
		assert.Equal(t, CreditStatusPending, credit.Status)

		payTestCredit(t, credit, 200)
		assert.Equal(t, "0", credit.RemainingAmount.String())
		assert.Equal(t, CreditStatusPaid, credit.Status)
		assert.Equal(t, "500", credit.TotalPaid().String())

		_, err := credit.ApplyPayment(valueobject.NewMoneyMXNFromFloat(1),
			valueobject.PaymentMethodCash, "")
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PAYMENT_EXCEEDS_BALANCE", domainErr.Code)
	})

	t.Run("balance always equals price minus payments", func(t *testing.T) {
		credit := createTestCredit(t, 200, 500)
		payTestCredit(t, credit, 150)
		payTestCredit(t, credit, 75)

		assert.True(t, credit.RemainingAmount.Equal(credit.Price.Sub(credit.TotalPaid())))
	})

	t.Run("rejects payment above remaining balance", func(t *testing.T) {
		credit := createTestCredit(t, 200, 500)
		payTestCredit(t, credit, 400)

		_, err := credit.ApplyPayment(valueobject.NewMoneyMXNFromFloat(101),
			valueobject.PaymentMethodCard, "")
		assert.Error(t, err)
		assert.Equal(t, "100", credit.RemainingAmount.String())
		assert.Len(t, credit.Payments, 1)
	})

	t.Run("payment equal to balance closes the credit", func(t *testing.T) {
		credit := createTestCredit(t, 200, 500)
		payTestCredit(t, credit, 500)
		assert.Equal(t, CreditStatusPaid, credit.Status)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		credit := createTestCredit(t, 200, 500)
		_, err := credit.ApplyPayment(valueobject.ZeroMXN(), valueobject.PaymentMethodCash, "")
		assert.Error(t, err)
	})

	t.Run("rejects invalid payment method", func(t *testing.T) {
		credit := createTestCredit(t, 200, 500)
		_, err := credit.ApplyPayment(valueobject.NewMoneyMXNFromFloat(100),
			valueobject.PaymentMethod("CHECK"), "")
		assert.Error(t, err)
	})
}

func TestCredit_ProportionalCost(t *testing.T) {
	t.Run("cost recognized in proportion to collections", func(t *testing.T) {
		credit := createTestCredit(t, 200, 500)
		payTestCredit(t, credit, 250)

		// 200 * (250/500) = 100
		assert.Equal(t, "100", credit.ProportionalCost().String())
		assert.Equal(t, "150", credit.RealProfit().String())
	})

	t.Run("fully paid credit recognizes full cost", func(t *testing.T) {
		credit := createTestCredit(t, 200, 500)
		payTestCredit(t, credit, 500)

		assert.Equal(t, "200", credit.ProportionalCost().String())
		assert.True(t, credit.RealProfit().Equal(credit.ExpectedProfit()))
	})

	t.Run("no payments means no cost recognized", func(t *testing.T) {
		credit := createTestCredit(t, 200, 500)
		assert.True(t, credit.ProportionalCost().IsZero())
		assert.True(t, credit.RealProfit().IsZero())
	})
}

func TestCredit_IsOverdue(t *testing.T) {
	credit := createTestCredit(t, 200, 500)

	assert.False(t, credit.IsOverdue(time.Now()))
	assert.True(t, credit.IsOverdue(credit.DueDate.AddDate(0, 0, 1)))

	payTestCredit(t, credit, 500)
	assert.False(t, credit.IsOverdue(credit.DueDate.AddDate(0, 0, 1)))
}

func TestCredit_HasPayments(t *testing.T) {
	credit := createTestCredit(t, 200, 500)
	assert.False(t, credit.HasPayments())

	payTestCredit(t, credit, 100)
	assert.True(t, credit.HasPayments())
}
