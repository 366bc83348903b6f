package main

import (
	"context"
	"testing"

	"go-oms/application"
	"go-oms/config"
	"go-oms/modules/customer"
	"go-oms/modules/order"
	"go-oms/modules/product"
	"go-oms/shared/common/logger"
	"go-oms/shared/common/module"
	"go-oms/shared/common/storage/sqldb/sqldbtest"
	"go-oms/shared/common/storage/sqldb/transactor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunScenario(t *testing.T) {
	_, tx, dbCtx := sqldbtest.NewTransactor(t, transactor.WithNestedTransactionStrategy(transactor.NestedTransactionsSavepoints))
	mCtx := module.NewModuleContext(tx, dbCtx)
	app := application.New(config.Config{})
	require.NoError(t, app.RegisterModules(customer.NewModule(mCtx), product.NewModule(mCtx), order.NewModule(mCtx)))

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.NewContext(context.Background(), zap.New(core))

	require.NoError(t, runScenario(ctx, app.Registry()))

	messages := make([]string, 0, logs.Len())
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "This is the first console.log of the event: CustomerCreated")
	assert.Contains(t, messages, "This is the second console.log of the event: CustomerCreated")
	assert.Contains(t, messages, "Sending email to .....")

	changed := logs.FilterMessageSnippet("Customer address changed:").All()
	require.Len(t, changed, 1)
	assert.Contains(t, changed[0].Message, "Hugo Albuquerque changed to: Rua Um 2 12345-678 Recife")

	customerLog := logs.FilterMessage("Customer").All()
	require.Len(t, customerLog, 1)
	assert.Equal(t, int64(25), customerLog[0].ContextMap()["reward_points"])
	assert.Equal(t, true, customerLog[0].ContextMap()["active"])

	totalLog := logs.FilterMessage("Sales total").All()
	require.Len(t, totalLog, 1)
	assert.Equal(t, 50.0, totalLog[0].ContextMap()["total"])
}
