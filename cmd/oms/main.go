package main

import (
	"context"
	"fmt"

	"go-oms/application"
	"go-oms/config"
	"go-oms/modules/customer"
	"go-oms/modules/order"
	"go-oms/modules/product"
	"go-oms/shared/common/logger"
	"go-oms/shared/common/module"
	"go-oms/shared/common/observability"
	"go-oms/shared/common/storage/sqldb"
	"go-oms/shared/common/storage/sqldb/transactor"

	"go.uber.org/zap"
)

var (
	Version = "local-dev"
	Time    = "n/a"
)

func main() {
	closeLog, err := logger.Init()
	if err != nil {
		panic(err.Error())
	}
	defer closeLog()

	config, err := config.Load()
	if err != nil {
		panic(err.Error())
	}

	ctx := context.Background()

	shutdownOtel, err := observability.InitOtlp(ctx, observability.Options{
		CollectorAddr:  config.OtelCollector,
		ServiceName:    config.ServiceName,
		ServiceVersion: Version,
	})
	if err != nil {
		panic(err.Error())
	}
	defer func() {
		if err := shutdownOtel(ctx); err != nil {
			logger.Log().Error(fmt.Sprintf("Error shutting down telemetry: %v", err))
		}
	}()

	dbCtx, closeDB, err := sqldb.NewDBContext(config.DBDriver, config.DSN)
	if err != nil {
		panic(err.Error())
	}
	defer func() { // ใช่ท่า IIFE เพราะต้องการแสดง error ถ้าปิดไม่ได้
		if err := closeDB(); err != nil {
			logger.Log().Error(fmt.Sprintf("Error closing database: %v", err))
		}
	}()

	n, err := sqldb.Migrate(dbCtx.DB())
	if err != nil {
		panic(err.Error())
	}
	logger.Log().Info("Migrations applied", zap.Int("count", n))

	opts := []transactor.Option{}
	if config.NestedTx == "savepoints" {
		// เพิ่มใช้งาน nested transaction strategy ที่ใช้ Savepoints
		opts = append(opts, transactor.WithNestedTransactionStrategy(transactor.NestedTransactionsSavepoints))
	}
	transactor, dbtxCtx := transactor.New(dbCtx.DB(), opts...)
	mCtx := module.NewModuleContext(transactor, dbtxCtx)

	app := application.New(*config)
	err = app.RegisterModules(
		customer.NewModule(mCtx),
		product.NewModule(mCtx),
		order.NewModule(mCtx),
	)
	if err != nil {
		panic(err.Error())
	}

	logger.Log().Info("Starting", zap.String("version", Version), zap.String("build_time", Time))

	if err := runScenario(logger.NewContext(ctx, logger.Log()), app.Registry()); err != nil {
		logger.Log().Error(fmt.Sprintf("Scenario failed: %v", err))
		return
	}

	logger.Log().Info("Scenario complete.")
}
