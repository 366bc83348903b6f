package customer

import (
	"go-oms/modules/customer/internal/domain/event"
	"go-oms/modules/customer/internal/domain/eventhandler"
	"go-oms/modules/customer/internal/repository"
	"go-oms/modules/customer/service"
	"go-oms/shared/common/domain"
	"go-oms/shared/common/module"
	"go-oms/shared/common/registry"
	"go-oms/shared/contract/customercontract"
)

const (
	CustomerServiceKey registry.ServiceKey = "CustomerService"
)

func NewModule(mCtx *module.ModuleContext) module.Module {
	return &moduleImp{mCtx: mCtx}
}

type moduleImp struct {
	mCtx    *module.ModuleContext
	custSvc service.CustomerService
}

func (m *moduleImp) Name() string {
	return "customer"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry) error {
	// สร้าง dispatcher แยกของโมดูลนี้ เพื่อควบคุมการลงทะเบียน handler ได้เอง
	dispatcher := domain.NewEventDispatcher()
	dispatcher.Register(event.CustomerCreatedEventType, eventhandler.NewSendConsoleLog1Handler())
	dispatcher.Register(event.CustomerCreatedEventType, eventhandler.NewSendConsoleLog2Handler())
	dispatcher.Register(event.CustomerAddressChangedEventType, eventhandler.NewSendConsoleLogHandler())

	repo := repository.NewCustomerRepository(m.mCtx.DBCtx)
	m.custSvc = service.NewCustomerService(m.mCtx.Transactor, repo, dispatcher)

	return nil
}

func (m *moduleImp) Services() []registry.ProvidedService {
	return []registry.ProvidedService{
		{Key: CustomerServiceKey, Value: m.custSvc},
		{Key: customercontract.RewardManagerKey, Value: m.custSvc},
	}
}
