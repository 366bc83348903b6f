package model_test

import (
	"testing"

	"go-oms/modules/customer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddress(t *testing.T) model.Address {
	t.Helper()
	a, err := model.NewAddress("Street 1", 123, "13330-250", "São Paulo")
	require.NoError(t, err)
	return a
}

func TestNewCustomer(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		_, err := model.NewCustomer("", "John")
		assert.EqualError(t, err, "Id is required")
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := model.NewCustomer("123", "")
		assert.EqualError(t, err, "Name is required")
	})

	t.Run("id is checked before name", func(t *testing.T) {
		_, err := model.NewCustomer("", "")
		assert.ErrorIs(t, err, model.ErrIDRequired)
	})

	t.Run("starts inactive without address or points", func(t *testing.T) {
		c, err := model.NewCustomer("123", "John")

		require.NoError(t, err)
		assert.Equal(t, "123", c.ID())
		assert.Equal(t, "John", c.Name())
		assert.False(t, c.IsActive())
		assert.Zero(t, c.RewardPoints())
		_, ok := c.Address()
		assert.False(t, ok)
	})
}

func TestCustomerChangeName(t *testing.T) {
	c, _ := model.NewCustomer("123", "John")

	require.NoError(t, c.ChangeName("Jane"))
	assert.Equal(t, "Jane", c.Name())

	assert.EqualError(t, c.ChangeName(""), "Name is required")
	assert.Equal(t, "Jane", c.Name())
}

func TestCustomerActivate(t *testing.T) {
	t.Run("requires an address", func(t *testing.T) {
		c, _ := model.NewCustomer("1", "Customer 1")

		err := c.Activate()

		assert.EqualError(t, err, "Address is mandatory to activate a costumer")
		assert.False(t, c.IsActive())
	})

	t.Run("activates with an address", func(t *testing.T) {
		c, _ := model.NewCustomer("1", "Customer 1")
		c.ChangeAddress(newAddress(t))

		require.NoError(t, c.Activate())
		assert.True(t, c.IsActive())
	})

	t.Run("deactivate", func(t *testing.T) {
		c, _ := model.NewCustomer("1", "Customer 1")
		c.ChangeAddress(newAddress(t))
		require.NoError(t, c.Activate())

		c.Deactivate()

		assert.False(t, c.IsActive())
	})
}

func TestCustomerChangeAddress(t *testing.T) {
	c, _ := model.NewCustomer("1", "Customer 1")
	addr := newAddress(t)

	c.ChangeAddress(addr)

	got, ok := c.Address()
	require.True(t, ok)
	assert.Equal(t, addr, got)
}

func TestCustomerAddRewardPoints(t *testing.T) {
	c, _ := model.NewCustomer("1", "Customer 1")
	assert.Zero(t, c.RewardPoints())

	require.NoError(t, c.AddRewardPoints(10))
	assert.Equal(t, 10, c.RewardPoints())

	require.NoError(t, c.AddRewardPoints(10))
	assert.Equal(t, 20, c.RewardPoints())

	require.NoError(t, c.AddRewardPoints(0))
	assert.Equal(t, 20, c.RewardPoints())

	assert.EqualError(t, c.AddRewardPoints(-1), "Reward points must not be negative")
	assert.Equal(t, 20, c.RewardPoints())
}
