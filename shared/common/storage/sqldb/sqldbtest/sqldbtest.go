// Package sqldbtest เปิดฐานข้อมูลที่รัน migration แล้วสำหรับ test ของ repository
package sqldbtest

import (
	"testing"

	"go-oms/shared/common/storage/sqldb"
	"go-oms/shared/common/storage/sqldb/transactor"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// NewSQLite คืนฐานข้อมูล sqlite ในหน่วยความจำที่รัน migration แล้ว ปิดให้อัตโนมัติเมื่อจบ test
func NewSQLite(t testing.TB) *sqlx.DB {
	t.Helper()
	return open(t, sqldb.DriverSQLite, ":memory:")
}

// NewTransactor เหมือน NewSQLite แต่คืน transactor และ DBTXContext ไปด้วย
func NewTransactor(t testing.TB, opts ...transactor.Option) (*sqlx.DB, transactor.Transactor, transactor.DBTXContext) {
	t.Helper()
	db := NewSQLite(t)
	tx, dbCtx := transactor.New(db, opts...)
	return db, tx, dbCtx
}

func open(t testing.TB, driver, dsn string) *sqlx.DB {
	dbCtx, closeDB, err := sqldb.NewDBContext(driver, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeDB() })

	_, err = sqldb.Migrate(dbCtx.DB())
	require.NoError(t, err)

	return dbCtx.DB()
}
