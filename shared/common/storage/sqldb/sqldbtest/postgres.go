//go:build integration

package sqldbtest

import (
	"context"
	"testing"
	"time"

	"go-oms/shared/common/storage/sqldb"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// NewPostgres เปิด postgres container ชั่วคราว แล้วคืน connection ที่รัน migration แล้ว
func NewPostgres(t testing.TB) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("docker.io/postgres:16-alpine"),
		postgres.WithDatabase("oms"),
		postgres.WithUsername("oms"),
		postgres.WithPassword("oms"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	return open(t, sqldb.DriverPostgres, dsn)
}
