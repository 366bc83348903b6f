package service

import (
	"context"

	"go-oms/modules/customer/dto"
	"go-oms/modules/customer/internal/domain/event"
	"go-oms/modules/customer/internal/model"
	"go-oms/modules/customer/internal/repository"
	"go-oms/shared/common/domain"
	"go-oms/shared/common/logger"
	"go-oms/shared/common/storage/sqldb/transactor"
	"go-oms/shared/contract/customercontract"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type CustomerService interface {
	customercontract.RewardManager
	CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*customercontract.CustomerInfo, error)
	ChangeAddress(ctx context.Context, id string, req *dto.AddressRequest) error
	Rename(ctx context.Context, id string, name string) error
	Activate(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	ListCustomers(ctx context.Context) ([]*customercontract.CustomerInfo, error)
}

type customerService struct {
	transactor transactor.Transactor
	custRepo   repository.CustomerRepository
	factory    *model.CustomerFactory
	dispatcher domain.EventDispatcher
}

func NewCustomerService(
	transactor transactor.Transactor,
	custRepo repository.CustomerRepository,
	dispatcher domain.EventDispatcher,
) CustomerService {
	return &customerService{
		transactor: transactor,
		custRepo:   custRepo,
		factory:    model.NewCustomerFactory(),
		dispatcher: dispatcher,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*customercontract.CustomerInfo, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("service")
	ctx, span := tracer.Start(ctx, "Service:CustomerService:CreateCustomer")
	defer span.End()

	// แปลง DTO → Model
	var (
		customer *model.Customer
		err      error
	)
	if req.Address == nil {
		customer, err = s.factory.Create(req.Name)
	} else {
		var addr model.Address
		addr, err = toAddress(req.Address)
		if err == nil {
			customer, err = s.factory.CreateWithAddress(req.Name, addr)
		}
	}
	if err != nil {
		return nil, err
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, registerPostCommitHook func(transactor.PostCommitHook)) error {
		if err := s.custRepo.Create(ctx, customer); err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}

		// ให้ dispatch หลัง commit แล้ว
		evt := event.NewCustomerCreatedEvent(customer.ID(), customer.Name())
		registerPostCommitHook(func(ctx context.Context) error {
			return s.dispatcher.Notify(ctx, evt)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toCustomerInfo(customer), nil
}

func (s *customerService) ChangeAddress(ctx context.Context, id string, req *dto.AddressRequest) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("service")
	ctx, span := tracer.Start(ctx, "Service:CustomerService:ChangeAddress")
	defer span.End()

	addr, err := toAddress(req)
	if err != nil {
		return err
	}

	return s.update(ctx, id, func(c *model.Customer) (domain.Event, error) {
		c.ChangeAddress(addr)
		return event.NewCustomerAddressChangedEvent(c.ID(), c.Name(), addr.String()), nil
	})
}

func (s *customerService) Rename(ctx context.Context, id string, name string) error {
	return s.update(ctx, id, func(c *model.Customer) (domain.Event, error) {
		return nil, c.ChangeName(name)
	})
}

func (s *customerService) Activate(ctx context.Context, id string) error {
	return s.update(ctx, id, func(c *model.Customer) (domain.Event, error) {
		return nil, c.Activate()
	})
}

func (s *customerService) Deactivate(ctx context.Context, id string) error {
	return s.update(ctx, id, func(c *model.Customer) (domain.Event, error) {
		c.Deactivate()
		return nil, nil
	})
}

func (s *customerService) AddRewardPoints(ctx context.Context, id string, points int) error {
	return s.update(ctx, id, func(c *model.Customer) (domain.Event, error) {
		return nil, c.AddRewardPoints(points)
	})
}

func (s *customerService) GetCustomerByID(ctx context.Context, id string) (*customercontract.CustomerInfo, error) {
	customer, err := s.custRepo.Find(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error(), zap.String("customer_id", id))
		return nil, err
	}
	return toCustomerInfo(customer), nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*customercontract.CustomerInfo, error) {
	customers, err := s.custRepo.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	infos := make([]*customercontract.CustomerInfo, 0, len(customers))
	for _, c := range customers {
		infos = append(infos, toCustomerInfo(c))
	}
	return infos, nil
}

// update โหลด customer แก้ไข แล้วบันทึกใน transaction เดียว
// ถ้า mutate คืน event จะ dispatch หลัง commit
func (s *customerService) update(ctx context.Context, id string, mutate func(c *model.Customer) (domain.Event, error)) error {
	return s.transactor.WithinTransaction(ctx, func(ctx context.Context, registerPostCommitHook func(transactor.PostCommitHook)) error {
		customer, err := s.custRepo.Find(ctx, id)
		if err != nil {
			logger.FromContext(ctx).Error(err.Error(), zap.String("customer_id", id))
			return err
		}

		evt, err := mutate(customer)
		if err != nil {
			return err
		}

		if err := s.custRepo.Update(ctx, customer); err != nil {
			logger.FromContext(ctx).Error(err.Error(), zap.String("customer_id", id))
			return err
		}

		if evt != nil {
			registerPostCommitHook(func(ctx context.Context) error {
				return s.dispatcher.Notify(ctx, evt)
			})
		}
		return nil
	})
}

func toAddress(req *dto.AddressRequest) (model.Address, error) {
	return model.NewAddress(req.Street, req.Number, req.Zipcode, req.City)
}

func toCustomerInfo(c *model.Customer) *customercontract.CustomerInfo {
	info := &customercontract.CustomerInfo{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}
	if a, ok := c.Address(); ok {
		info.Address = a.String()
	}
	return info
}
