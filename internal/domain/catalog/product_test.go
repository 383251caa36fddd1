package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProduct(t *testing.T, stock int) *Product {
	t.Helper()
	product, err := NewProduct("PRD-001", "Shampoo", uuid.New(),
		valueobject.NewMoneyMXNFromFloat(50), valueobject.NewMoneyMXNFromFloat(120), stock, 2)
	require.NoError(t, err)
	return product
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product := createTestProduct(t, 10)
		assert.Equal(t, "PRD-001", product.Code)
		assert.Equal(t, "Shampoo", product.Name)
		assert.Equal(t, 10, product.Stock)
		assert.Equal(t, 2, product.MinStock)
		assert.NotEmpty(t, product.ID)
	})

	tests := []struct {
		name      string
		code      string
		prodName  string
		costPrice float64
		salePrice float64
		stock     int
		minStock  int
	}{
		{"empty code", "", "Shampoo", 50, 120, 10, 2},
		{"empty name", "PRD-001", "", 50, 120, 10, 2},
		{"negative cost price", "PRD-001", "Shampoo", -1, 120, 10, 2},
		{"negative sale price", "PRD-001", "Shampoo", 50, -1, 10, 2},
		{"negative stock", "PRD-001", "Shampoo", 50, 120, -1, 2},
		{"negative min stock", "PRD-001", "Shampoo", 50, 120, 10, -1},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.code, tt.prodName, uuid.New(),
				valueobject.NewMoneyMXNFromFloat(tt.costPrice),
				valueobject.NewMoneyMXNFromFloat(tt.salePrice), tt.stock, tt.minStock)
			assert.Error(t, err)
		})
	}
}

func TestProduct_DecreaseStock(t *testing.T) {
	t.Run("decreases stock", func(t *testing.T) {
		product := createTestProduct(t, 10)
		require.NoError(t, product.DecreaseStock(3))
		assert.Equal(t, 7, product.Stock)
	})

	t.Run("allows draining stock to zero", func(t *testing.T) {
		product := createTestProduct(t, 10)
		require.NoError(t, product.DecreaseStock(10))
		assert.Equal(t, 0, product.Stock)
	})

	t.Run("rejects quantity exceeding stock", func(t *testing.T) {
		product := createTestProduct(t, 10)
		err := product.DecreaseStock(11)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		assert.Equal(t, 10, product.Stock)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		product := createTestProduct(t, 10)
		assert.Error(t, product.DecreaseStock(0))
		assert.Error(t, product.DecreaseStock(-1))
		assert.Equal(t, 10, product.Stock)
	})
}

func TestProduct_IncreaseStock(t *testing.T) {
	t.Run("increases stock without upper bound", func(t *testing.T) {
		product := createTestProduct(t, 10)
		require.NoError(t, product.IncreaseStock(1000))
		assert.Equal(t, 1010, product.Stock)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		product := createTestProduct(t, 10)
		assert.Error(t, product.IncreaseStock(0))
		assert.Error(t, product.IncreaseStock(-5))
	})
}

func TestProduct_StockConservation(t *testing.T) {
	// decrease followed by an equal increase restores the original stock
	product := createTestProduct(t, 10)
	require.NoError(t, product.DecreaseStock(3))
	require.NoError(t, product.IncreaseStock(3))
	assert.Equal(t, 10, product.Stock)
}

func TestProduct_AdjustStock(t *testing.T) {
	product := createTestProduct(t, 10)

	require.NoError(t, product.AdjustStock(25))
	assert.Equal(t, 25, product.Stock)

	assert.Error(t, product.AdjustStock(-1))
	assert.Equal(t, 25, product.Stock)
}

func TestProduct_IsLowStock(t *testing.T) {
	product := createTestProduct(t, 10)
	assert.False(t, product.IsLowStock())

	require.NoError(t, product.DecreaseStock(8))
	assert.True(t, product.IsLowStock())
}

func TestCategory(t *testing.T) {
	t.Run("creates category", func(t *testing.T) {
		category, err := NewCategory("Hair Care")
		require.NoError(t, err)
		assert.Equal(t, "Hair Care", category.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCategory("")
		assert.Error(t, err)
	})

	t.Run("renames category", func(t *testing.T) {
		category, err := NewCategory("Hair Care")
		require.NoError(t, err)
		require.NoError(t, category.Rename("Skin Care"))
		assert.Equal(t, "Skin Care", category.Name)
	})
}
