//go:build integration

package repository_test

import (
	"testing"

	"go-oms/modules/customer/internal/repository"
	"go-oms/shared/common/storage/sqldb/sqldbtest"
	"go-oms/shared/common/storage/sqldb/transactor"
)

func TestCustomerRepositoryPostgres(t *testing.T) {
	db := sqldbtest.NewPostgres(t)

	runCustomerRepositoryTests(t, func(t *testing.T) repository.CustomerRepository {
		t.Cleanup(func() { db.MustExec(`TRUNCATE customers CASCADE`) })
		_, dbCtx := transactor.New(db)
		return repository.NewCustomerRepository(dbCtx)
	})
}
