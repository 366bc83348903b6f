package order

import (
	"go-oms/modules/order/internal/repository"
	"go-oms/modules/order/service"
	"go-oms/shared/common/module"
	"go-oms/shared/common/registry"
	"go-oms/shared/contract/customercontract"
	"go-oms/shared/contract/productcontract"
)

const (
	OrderServiceKey registry.ServiceKey = "OrderService"
)

func NewModule(mCtx *module.ModuleContext) module.Module {
	return &moduleImp{mCtx: mCtx}
}

type moduleImp struct {
	mCtx     *module.ModuleContext
	orderSvc service.OrderService
}

func (m *moduleImp) Name() string {
	return "order"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry) error {
	// Resolve service ของโมดูลอื่นผ่าน contract เท่านั้น
	rewardMgr, err := registry.ResolveAs[customercontract.RewardManager](reg, customercontract.RewardManagerKey)
	if err != nil {
		return err
	}

	productRd, err := registry.ResolveAs[productcontract.ProductReader](reg, productcontract.ProductReaderKey)
	if err != nil {
		return err
	}

	repo := repository.NewOrderRepository(m.mCtx.Transactor, m.mCtx.DBCtx)
	m.orderSvc = service.NewOrderService(m.mCtx.Transactor, rewardMgr, productRd, repo)

	return nil
}

func (m *moduleImp) Services() []registry.ProvidedService {
	return []registry.ProvidedService{
		{Key: OrderServiceKey, Value: m.orderSvc},
	}
}
