//go:build integration

package repository_test

import (
	"testing"

	"go-oms/shared/common/storage/sqldb/sqldbtest"
	"go-oms/shared/common/storage/sqldb/transactor"

	"github.com/jmoiron/sqlx"
)

func TestOrderRepositoryPostgres(t *testing.T) {
	db := sqldbtest.NewPostgres(t)

	runOrderRepositoryTests(t, func(t *testing.T) (*sqlx.DB, transactor.Transactor, transactor.DBTXContext) {
		t.Cleanup(func() { db.MustExec(`TRUNCATE customers, orders, order_items CASCADE`) })
		tx, dbCtx := transactor.New(db)
		return db, tx, dbCtx
	})
}
