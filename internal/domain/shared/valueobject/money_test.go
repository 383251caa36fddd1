package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromInt(100), MXN)
		require.NoError(t, err)
		assert.Equal(t, MXN, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("rejects empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoneyMXNFromFloat(100.50)
	b := NewMoneyMXNFromFloat(49.50)

	t.Run("add", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "150.00", sum.StringFixed(2))
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, "51.00", diff.StringFixed(2))
	})

	t.Run("multiply", func(t *testing.T) {
		product := b.MultiplyByInt(2)
		assert.Equal(t, "99.00", product.StringFixed(2))
	})

	t.Run("divide by zero fails", func(t *testing.T) {
		_, err := a.Divide(decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("currency mismatch fails", func(t *testing.T) {
		usd, err := NewMoney(decimal.NewFromInt(10), USD)
		require.NoError(t, err)
		_, err = a.Add(usd)
		assert.Error(t, err)
		_, err = a.Subtract(usd)
		assert.Error(t, err)
	})
}

func TestMoney_CalculatePercentage(t *testing.T) {
	m := NewMoneyMXNFromFloat(1000)
	commission := m.CalculatePercentage(decimal.NewFromInt(10))
	assert.Equal(t, "100.00", commission.StringFixed(2))
}

func TestMoney_Comparisons(t *testing.T) {
	small := NewMoneyMXNFromFloat(5)
	big := NewMoneyMXNFromFloat(10)

	lt, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, lt)

	gt, err := big.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, gt)

	assert.True(t, small.Equals(NewMoneyMXNFromFloat(5)))
	assert.False(t, small.Equals(big))
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, ZeroMXN().IsZero())
	assert.True(t, NewMoneyMXNFromFloat(1).IsPositive())
	assert.True(t, NewMoneyMXNFromFloat(-1).IsNegative())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := NewMoneyMXNFromFloat(123.45)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoney_Scan(t *testing.T) {
	t.Run("scans string value", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("42.50"))
		assert.Equal(t, "42.50", m.StringFixed(2))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("scans nil as zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(42))
	})
}
