package product

import (
	"go-oms/modules/product/internal/domain/event"
	"go-oms/modules/product/internal/domain/eventhandler"
	"go-oms/modules/product/internal/repository"
	"go-oms/modules/product/service"
	"go-oms/shared/common/domain"
	"go-oms/shared/common/module"
	"go-oms/shared/common/registry"
	"go-oms/shared/contract/productcontract"
)

const (
	ProductServiceKey registry.ServiceKey = "ProductService"
)

func NewModule(mCtx *module.ModuleContext) module.Module {
	return &moduleImp{mCtx: mCtx}
}

type moduleImp struct {
	mCtx       *module.ModuleContext
	productSvc service.ProductService
}

func (m *moduleImp) Name() string {
	return "product"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry) error {
	dispatcher := domain.NewEventDispatcher()
	dispatcher.Register(event.ProductCreatedEventType, eventhandler.NewSendEmailWhenProductIsCreatedHandler())

	repo := repository.NewProductRepository(m.mCtx.DBCtx)
	m.productSvc = service.NewProductService(m.mCtx.Transactor, repo, dispatcher)

	return nil
}

func (m *moduleImp) Services() []registry.ProvidedService {
	return []registry.ProvidedService{
		{Key: ProductServiceKey, Value: m.productSvc},
		{Key: productcontract.ProductReaderKey, Value: m.productSvc},
	}
}
