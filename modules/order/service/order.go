package service

import (
	"context"

	"go-oms/modules/order/dto"
	"go-oms/modules/order/internal/model"
	"go-oms/modules/order/internal/repository"
	"go-oms/shared/common/idgen"
	"go-oms/shared/common/logger"
	"go-oms/shared/common/storage/sqldb/transactor"
	"go-oms/shared/contract/customercontract"
	"go-oms/shared/contract/productcontract"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, req *dto.PlaceOrderRequest) (*dto.OrderInfo, error)
	AddItem(ctx context.Context, orderID string, line dto.OrderLine) (*dto.OrderInfo, error)
	ChangeItemQuantity(ctx context.Context, orderID string, itemID string, quantity int) (*dto.OrderInfo, error)
	RemoveItem(ctx context.Context, orderID string, itemID string) (*dto.OrderInfo, error)
	GetOrder(ctx context.Context, id string) (*dto.OrderInfo, error)
	ListOrders(ctx context.Context) ([]*dto.OrderInfo, error)
	SalesTotal(ctx context.Context) (float64, error)
}

type orderService struct {
	transactor transactor.Transactor
	rewardMgr  customercontract.RewardManager
	productRd  productcontract.ProductReader
	orderRepo  repository.OrderRepository
}

func NewOrderService(
	transactor transactor.Transactor,
	rewardMgr customercontract.RewardManager,
	productRd productcontract.ProductReader,
	orderRepo repository.OrderRepository,
) OrderService {
	return &orderService{
		transactor: transactor,
		rewardMgr:  rewardMgr,
		productRd:  productRd,
		orderRepo:  orderRepo,
	}
}

// PlaceOrder สร้าง order จาก snapshot ของ product แล้วให้ reward points ครึ่งหนึ่งของยอดรวม
// ทั้งสองอย่างอยู่ใน transaction เดียวกัน
func (s *orderService) PlaceOrder(ctx context.Context, req *dto.PlaceOrderRequest) (*dto.OrderInfo, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("service")
	ctx, span := tracer.Start(ctx, "Service:OrderService:PlaceOrder")
	defer span.End()

	// Business Logic Rule: ตรวจสอบ customer id
	if _, err := s.rewardMgr.GetCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		item, err := s.newItem(ctx, line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	order, err := model.NewOrder(idgen.NewID(), req.CustomerID, items)
	if err != nil {
		return nil, err
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, _ func(transactor.PostCommitHook)) error {
		if err := s.orderRepo.Create(ctx, order); err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}

		if err := s.rewardMgr.AddRewardPoints(ctx, order.CustomerID(), rewardPointsFor(order)); err != nil {
			logger.FromContext(ctx).Error(err.Error(), zap.String("customer_id", order.CustomerID()))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOrderInfo(order), nil
}

func (s *orderService) AddItem(ctx context.Context, orderID string, line dto.OrderLine) (*dto.OrderInfo, error) {
	item, err := s.newItem(ctx, line)
	if err != nil {
		return nil, err
	}

	return s.update(ctx, orderID, func(o *model.Order) error {
		return o.AddItem(item)
	})
}

func (s *orderService) ChangeItemQuantity(ctx context.Context, orderID string, itemID string, quantity int) (*dto.OrderInfo, error) {
	return s.update(ctx, orderID, func(o *model.Order) error {
		item, ok := o.Item(itemID)
		if !ok {
			return model.ErrItemNotFound
		}
		changed, err := item.WithQuantity(quantity)
		if err != nil {
			return err
		}
		return o.UpdateItem(changed)
	})
}

func (s *orderService) RemoveItem(ctx context.Context, orderID string, itemID string) (*dto.OrderInfo, error) {
	return s.update(ctx, orderID, func(o *model.Order) error {
		if err := o.RemoveItem(itemID); err != nil {
			return err
		}
		// Business Logic Rule: order ที่บันทึกแล้วต้องเหลือ item อย่างน้อยหนึ่งรายการ
		if len(o.Items()) == 0 {
			return model.ErrItemsRequired
		}
		return nil
	})
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*dto.OrderInfo, error) {
	order, err := s.orderRepo.Find(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error(), zap.String("order_id", id))
		return nil, err
	}
	return toOrderInfo(order), nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]*dto.OrderInfo, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	infos := make([]*dto.OrderInfo, 0, len(orders))
	for _, o := range orders {
		infos = append(infos, toOrderInfo(o))
	}
	return infos, nil
}

func (s *orderService) SalesTotal(ctx context.Context) (float64, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return 0, err
	}
	return model.TotalOf(orders), nil
}

func (s *orderService) update(ctx context.Context, orderID string, mutate func(o *model.Order) error) (*dto.OrderInfo, error) {
	var order *model.Order
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, _ func(transactor.PostCommitHook)) error {
		var err error
		order, err = s.orderRepo.Find(ctx, orderID)
		if err != nil {
			logger.FromContext(ctx).Error(err.Error(), zap.String("order_id", orderID))
			return err
		}

		if err := mutate(order); err != nil {
			return err
		}

		if err := s.orderRepo.Update(ctx, order); err != nil {
			logger.FromContext(ctx).Error(err.Error(), zap.String("order_id", orderID))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderInfo(order), nil
}

// newItem สร้าง item ใหม่โดยคัดลอกชื่อและราคาของ product ณ ตอนนี้
func (s *orderService) newItem(ctx context.Context, line dto.OrderLine) (model.OrderItem, error) {
	if line.ProductID == "" {
		return model.OrderItem{}, model.ErrProductIDRequired
	}

	product, err := s.productRd.GetProductByID(ctx, line.ProductID)
	if err != nil {
		return model.OrderItem{}, err
	}

	return model.NewOrderItem(idgen.NewID(), product.ID, product.Name, product.Price, line.Quantity)
}

// ปัดเศษทิ้ง
func rewardPointsFor(o *model.Order) int {
	return int(o.Total() / 2)
}

func toOrderInfo(o *model.Order) *dto.OrderInfo {
	items := o.Items()
	info := &dto.OrderInfo{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Items:      make([]dto.OrderItemInfo, 0, len(items)),
		Total:      o.Total(),
	}
	for _, item := range items {
		info.Items = append(info.Items, dto.OrderItemInfo{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			Total:     item.Total(),
		})
	}
	return info
}
