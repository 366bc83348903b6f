package sqldb

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
)

// DDL เขียนให้ใช้ได้ทั้ง postgres และ sqlite
var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "0001_create_customers",
			Up: []string{`
CREATE TABLE IF NOT EXISTS customers (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	street        TEXT,
	number        INTEGER,
	zipcode       TEXT,
	city          TEXT,
	active        BOOLEAN NOT NULL DEFAULT FALSE,
	reward_points INTEGER NOT NULL DEFAULT 0
)`},
			Down: []string{`DROP TABLE IF EXISTS customers`},
		},
		{
			Id: "0002_create_products",
			Up: []string{`
CREATE TABLE IF NOT EXISTS products (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL,
	price DOUBLE PRECISION NOT NULL
)`},
			Down: []string{`DROP TABLE IF EXISTS products`},
		},
		{
			Id: "0003_create_orders",
			Up: []string{`
CREATE TABLE IF NOT EXISTS orders (
	id          TEXT PRIMARY KEY,
	customer_id TEXT NOT NULL REFERENCES customers (id),
	total       DOUBLE PRECISION NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS order_items (
	id         TEXT PRIMARY KEY,
	order_id   TEXT NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
	product_id TEXT NOT NULL,
	name       TEXT NOT NULL,
	price      DOUBLE PRECISION NOT NULL,
	quantity   INTEGER NOT NULL,
	position   INTEGER NOT NULL
)`, `CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id)`},
			Down: []string{
				`DROP TABLE IF EXISTS order_items`,
				`DROP TABLE IF EXISTS orders`,
			},
		},
	},
}

// dialect ของ sql-migrate ไม่ได้ใช้ชื่อเดียวกับ driver
func migrationDialect(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "postgres", nil
	case DriverSQLite, "sqlite3":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Migrate รัน migration ที่ยังไม่ได้รันทั้งหมด คืนจำนวน migration ที่ถูกรัน
func Migrate(db *sqlx.DB) (int, error) {
	dialect, err := migrationDialect(db.DriverName())
	if err != nil {
		return 0, err
	}

	n, err := migrate.Exec(db.DB, dialect, migrations, migrate.Up)
	if err != nil {
		return n, fmt.Errorf("failed to run migrations: %w", err)
	}
	return n, nil
}
