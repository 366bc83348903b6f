package model_test

import (
	"testing"

	"go-oms/modules/order/internal/model"
	"go-oms/shared/common/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		item, err := model.NewOrderItem("i1", "p1", "Item 1", 100, 2)

		require.NoError(t, err)
		assert.Equal(t, "i1", item.ID())
		assert.Equal(t, "p1", item.ProductID())
		assert.Equal(t, "Item 1", item.Name())
		assert.Equal(t, 100.0, item.Price())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, 200.0, item.Total())
	})

	tests := []struct {
		name      string
		id        string
		productID string
		itemName  string
		price     float64
		quantity  int
		wantErr   string
	}{
		{"empty id", "", "p1", "Item 1", 100, 1, "Id is required"},
		{"empty name", "i1", "p1", "", 100, 1, "Name is required"},
		{"negative price", "i1", "p1", "Item 1", -1, 1, "Price must be greater than zero"},
		{"zero price", "i1", "p1", "Item 1", 0, 1, "Price must be greater than zero"},
		{"empty product id", "i1", "", "Item 1", 100, 1, "ProductId is required"},
		{"negative quantity", "i2", "p1", "Item 2", 100, -1, "Quantity must be greater than zero"},
		{"zero quantity", "i1", "p1", "Item 1", 100, 0, "Quantity must be greater than zero"},
		{"price is checked before product id", "i1", "", "Item 1", 0, 1, "Price must be greater than zero"},
		{"name is checked before price", "i1", "p1", "", 0, 0, "Name is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.NewOrderItem(tc.id, tc.productID, tc.itemName, tc.price, tc.quantity)

			assert.EqualError(t, err, tc.wantErr)
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestOrderItemWithQuantity(t *testing.T) {
	item, _ := model.NewOrderItem("i1", "p1", "Item 1", 100, 2)

	changed, err := item.WithQuantity(5)
	require.NoError(t, err)
	assert.Equal(t, 500.0, changed.Total())
	assert.Equal(t, 2, item.Quantity())

	_, err = item.WithQuantity(0)
	assert.EqualError(t, err, "Quantity must be greater than zero")
}
