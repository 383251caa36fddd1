package sales

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSale(t *testing.T, commission float64) *Sale {
	t.Helper()
	sale, err := NewSale("Ana Torres", "555-0101", uuid.New(), "Lucia",
		decimal.NewFromFloat(commission), valueobject.PaymentMethodCash)
	require.NoError(t, err)
	return sale
}

func addTestItem(t *testing.T, sale *Sale, name string, quantity int, price, cost float64) *SaleItem {
	t.Helper()
	item, err := sale.AddItem(uuid.New(), name, quantity,
		valueobject.NewMoneyMXNFromFloat(price), valueobject.NewMoneyMXNFromFloat(cost))
	require.NoError(t, err)
	return item
}

func TestNewSale(t *testing.T) {
	t.Run("creates sale with valid inputs", func(t *testing.T) {
		sale := createTestSale(t, 10)
		assert.Equal(t, "Ana Torres", sale.ClientName)
		assert.Equal(t, SaleStatusCompleted, sale.Status)
		assert.True(t, sale.Subtotal.IsZero())
		assert.True(t, sale.Total.IsZero())
		assert.Empty(t, sale.Items)
		assert.Empty(t, sale.CommissionDiscounts)
		assert.NotEmpty(t, sale.ID)
	})

	t.Run("rejects empty client name", func(t *testing.T) {
		_, err := NewSale("", "", uuid.New(), "Lucia", decimal.NewFromInt(10), valueobject.PaymentMethodCash)
		assert.Error(t, err)
	})

	t.Run("rejects nil staff", func(t *testing.T) {
		_, err := NewSale("Ana", "", uuid.Nil, "Lucia", decimal.NewFromInt(10), valueobject.PaymentMethodCash)
		assert.Error(t, err)
	})

	t.Run("rejects commission outside 0-100", func(t *testing.T) {
		_, err := NewSale("Ana", "", uuid.New(), "Lucia", decimal.NewFromInt(-1), valueobject.PaymentMethodCash)
		assert.Error(t, err)
		_, err = NewSale("Ana", "", uuid.New(), "Lucia", decimal.NewFromInt(101), valueobject.PaymentMethodCash)
		assert.Error(t, err)
	})

	t.Run("rejects invalid payment method", func(t *testing.T) {
		_, err := NewSale("Ana", "", uuid.New(), "Lucia", decimal.NewFromInt(10), valueobject.PaymentMethod("CHECK"))
		assert.Error(t, err)
	})
}

func TestSale_AddItem(t *testing.T) {
	t.Run("computes item subtotal and sale totals", func(t *testing.T) {
		sale := createTestSale(t, 10)
		item := addTestItem(t, sale, "Shampoo", 3, 100, 40)

		assert.Equal(t, "300", item.Subtotal.String())
		assert.Equal(t, "300", sale.Subtotal.String())
		assert.Equal(t, "300", sale.Total.String())

		addTestItem(t, sale, "Conditioner", 2, 80, 30)
		assert.Equal(t, "460", sale.Subtotal.String())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		sale := createTestSale(t, 10)
		_, err := sale.AddItem(uuid.New(), "Shampoo", 0,
			valueobject.NewMoneyMXNFromFloat(100), valueobject.NewMoneyMXNFromFloat(40))
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		sale := createTestSale(t, 10)
		_, err := sale.AddItem(uuid.New(), "Shampoo", 1,
			valueobject.NewMoneyMXNFromFloat(-1), valueobject.NewMoneyMXNFromFloat(40))
		assert.Error(t, err)
	})
}

func TestSale_ApplyDiscount(t *testing.T) {
	t.Run("total is subtotal minus discount", func(t *testing.T) {
		sale := createTestSale(t, 10)
		addTestItem(t, sale, "Shampoo", 3, 100, 40)

		require.NoError(t, sale.ApplyDiscount(valueobject.NewMoneyMXNFromFloat(50)))
		assert.Equal(t, "300", sale.Subtotal.String())
		assert.Equal(t, "250", sale.Total.String())
	})

	t.Run("rejects negative discount", func(t *testing.T) {
		sale := createTestSale(t, 10)
		addTestItem(t, sale, "Shampoo", 1, 100, 40)
		assert.Error(t, sale.ApplyDiscount(valueobject.NewMoneyMXNFromFloat(-1)))
	})

	t.Run("rejects discount above subtotal", func(t *testing.T) {
		sale := createTestSale(t, 10)
		addTestItem(t, sale, "Shampoo", 1, 100, 40)
		assert.Error(t, sale.ApplyDiscount(valueobject.NewMoneyMXNFromFloat(101)))
	})
}

func TestSale_Complete(t *testing.T) {
	t.Run("requires at least one item", func(t *testing.T) {
		sale := createTestSale(t, 10)
		assert.Error(t, sale.Complete())
	})

	t.Run("emits SaleCompleted event", func(t *testing.T) {
		sale := createTestSale(t, 10)
		addTestItem(t, sale, "Shampoo", 1, 100, 40)
		require.NoError(t, sale.Complete())

		events := sale.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeSaleCompleted, events[0].EventType())
	})
}

func TestSale_Cancel(t *testing.T) {
	t.Run("marks sale cancelled", func(t *testing.T) {
		sale := createTestSale(t, 10)
		addTestItem(t, sale, "Shampoo", 1, 100, 40)

		require.NoError(t, sale.Cancel())
		assert.Equal(t, SaleStatusCancelled, sale.Status)
		assert.NotNil(t, sale.CancelledAt)
	})

	t.Run("rejects cancelling a cancelled sale", func(t *testing.T) {
		sale := createTestSale(t, 10)
		addTestItem(t, sale, "Shampoo", 1, 100, 40)
		require.NoError(t, sale.Cancel())

		err := sale.Cancel()
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})
}

func TestSale_ApplyCommissionDiscount(t *testing.T) {
	t.Run("appends discount record", func(t *testing.T) {
		sale := createTestSale(t, 10)
		addTestItem(t, sale, "Shampoo", 1, 1000, 400)

		now := time.Now()
		require.NoError(t, sale.ApplyCommissionDiscount(decimal.NewFromInt(30), "adjustment", now))

		require.Len(t, sale.CommissionDiscounts, 1)
		assert.Equal(t, "adjustment", sale.CommissionDiscounts[0].Reason)
		assert.Equal(t, now, sale.CommissionDiscounts[0].AppliedAt)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		sale := createTestSale(t, 10)
		addTestItem(t, sale, "Shampoo", 1, 1000, 400)
		assert.Error(t, sale.ApplyCommissionDiscount(decimal.Zero, "x", time.Now()))
		assert.Error(t, sale.ApplyCommissionDiscount(decimal.NewFromInt(-5), "x", time.Now()))
	})

	t.Run("rejects on cancelled sale", func(t *testing.T) {
		sale := createTestSale(t, 10)
		addTestItem(t, sale, "Shampoo", 1, 1000, 400)
		require.NoError(t, sale.Cancel())
		assert.Error(t, sale.ApplyCommissionDiscount(decimal.NewFromInt(30), "x", time.Now()))
	})
}

func TestSale_CommissionArithmetic(t *testing.T) {
	// Sale total 1000 at 10% commission, two 30-peso discounts recorded
	sale := createTestSale(t, 10)
	addTestItem(t, sale, "Shampoo", 1, 1000, 400)

	assert.Equal(t, "100", sale.BaseCommission().String())

	require.NoError(t, sale.ApplyCommissionDiscount(decimal.NewFromInt(30), "a", time.Now()))
	require.NoError(t, sale.ApplyCommissionDiscount(decimal.NewFromInt(30), "b", time.Now()))

	assert.Equal(t, "60", sale.CommissionDiscounts.Total().String())
	assert.Equal(t, "40", sale.NetCommission().String())
}

func TestSale_ClearCommission(t *testing.T) {
	sale := createTestSale(t, 10)
	addTestItem(t, sale, "Shampoo", 1, 1000, 400)
	require.NoError(t, sale.ApplyCommissionDiscount(decimal.NewFromInt(30), "a", time.Now()))

	sale.ClearCommission()

	assert.True(t, sale.Commission.IsZero())
	assert.Empty(t, sale.CommissionDiscounts)
	assert.True(t, sale.BaseCommission().IsZero())
}

func TestSale_CostOfGoods(t *testing.T) {
	sale := createTestSale(t, 10)
	addTestItem(t, sale, "Shampoo", 3, 100, 40)
	addTestItem(t, sale, "Conditioner", 2, 80, 30)

	assert.Equal(t, "180", sale.CostOfGoods().String())
}

func TestCommissionDiscounts_ScanValue(t *testing.T) {
	discounts := CommissionDiscounts{
		{Amount: decimal.NewFromInt(30), Reason: "adjustment", AppliedAt: time.Now().UTC()},
	}

	value, err := discounts.Value()
	require.NoError(t, err)

	var decoded CommissionDiscounts
	require.NoError(t, decoded.Scan(value))
	require.Len(t, decoded, 1)
	assert.True(t, decoded[0].Amount.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "adjustment", decoded[0].Reason)

	t.Run("nil scans to empty list", func(t *testing.T) {
		var d CommissionDiscounts
		require.NoError(t, d.Scan(nil))
		assert.Empty(t, d)
	})
}
