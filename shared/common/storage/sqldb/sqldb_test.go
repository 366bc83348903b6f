package sqldb_test

import (
	"testing"

	"go-oms/shared/common/storage/sqldb"
	"go-oms/shared/common/storage/sqldb/sqldbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db := sqldbtest.NewSQLite(t)

	t.Run("creates every table", func(t *testing.T) {
		for _, table := range []string{"customers", "products", "orders", "order_items"} {
			var n int
			err := db.Get(&n, "SELECT COUNT(*) FROM "+table)
			require.NoError(t, err, table)
			assert.Zero(t, n, table)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		n, err := sqldb.Migrate(db)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestSQLiteForeignKeys(t *testing.T) {
	db := sqldbtest.NewSQLite(t)

	t.Run("pragma is enabled", func(t *testing.T) {
		var enabled int
		require.NoError(t, db.Get(&enabled, `PRAGMA foreign_keys`))
		assert.Equal(t, 1, enabled)
	})

	t.Run("order requires an existing customer", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO orders (id, customer_id, total) VALUES ('o1', 'missing', 10)`)
		assert.Error(t, err)
	})

	t.Run("deleting an order cascades to its items", func(t *testing.T) {
		db.MustExec(`INSERT INTO customers (id, name) VALUES ('c1', 'Customer 1')`)
		db.MustExec(`INSERT INTO orders (id, customer_id, total) VALUES ('o2', 'c1', 10)`)
		db.MustExec(`INSERT INTO order_items (id, order_id, product_id, name, price, quantity, position) VALUES ('i1', 'o2', 'p1', 'Item 1', 10, 1, 0)`)

		db.MustExec(`DELETE FROM orders WHERE id = 'o2'`)

		var n int
		require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM order_items WHERE order_id = 'o2'`))
		assert.Zero(t, n)
	})
}

func TestNewDBContext_UnknownDriver(t *testing.T) {
	_, _, err := sqldb.NewDBContext("nope", "")
	assert.Error(t, err)
}
