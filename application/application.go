package application

import (
	"go-oms/config"
	"go-oms/shared/common/logger"
	"go-oms/shared/common/module"
	"go-oms/shared/common/registry"

	"go.uber.org/zap"
)

// Application รวมโมดูลทั้งหมดและ registry ของ service ที่แต่ละโมดูล export
type Application struct {
	config   config.Config
	registry registry.ServiceRegistry
	modules  []module.Module
}

func New(config config.Config) *Application {
	return &Application{
		config:   config,
		registry: registry.NewServiceRegistry(),
	}
}

// RegisterModules ต้องเรียงโมดูลที่ถูกใช้งานโดยโมดูลอื่นไว้ก่อน
func (app *Application) RegisterModules(modules ...module.Module) error {
	if err := module.InitAll(app.registry, modules...); err != nil {
		return err
	}

	for _, m := range modules {
		logger.Log().Info("Module initialized", zap.String("module", m.Name()))
	}
	app.modules = append(app.modules, modules...)

	return nil
}

func (app *Application) Registry() registry.ServiceRegistry {
	return app.registry
}

func (app *Application) Modules() []module.Module {
	return append([]module.Module(nil), app.modules...)
}

func (app *Application) Config() config.Config {
	return app.config
}
