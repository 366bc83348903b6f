package module

import (
	"go-oms/shared/common/registry"
	"go-oms/shared/common/storage/sqldb/transactor"
)

type Module interface {
	Name() string
	Init(reg registry.ServiceRegistry) error
}

// แยกออกมาเพราะว่า บางโมดูลอาจไม่ต้อง export service
type ServiceProvider interface {
	Services() []registry.ProvidedService
}

// ModuleContext รวม dependency ที่ทุกโมดูลใช้ร่วมกัน
type ModuleContext struct {
	Transactor transactor.Transactor
	DBCtx      transactor.DBTXContext
}

func NewModuleContext(transactor transactor.Transactor, dbCtx transactor.DBTXContext) *ModuleContext {
	return &ModuleContext{
		Transactor: transactor,
		DBCtx:      dbCtx,
	}
}

// InitAll เรียก Init ของแต่ละโมดูลตามลำดับ แล้วนำ service ที่ export ไปลงทะเบียนใน registry
// โมดูลที่ถูกใช้งานโดยโมดูลอื่นต้องมาก่อน
func InitAll(reg registry.ServiceRegistry, modules ...Module) error {
	for _, m := range modules {
		if err := m.Init(reg); err != nil {
			return err
		}

		if sp, ok := m.(ServiceProvider); ok {
			for _, svc := range sp.Services() {
				reg.Register(svc.Key, svc.Value)
			}
		}
	}
	return nil
}
