package event

import (
	"go-oms/shared/common/domain"
)

const (
	ProductCreatedEventType domain.EventName = "ProductCreatedEvent"
)

type ProductCreatedData struct {
	ProductID string
	Name      string
	Price     float64
}

// ProductCreatedEvent เกิดขึ้นเมื่อมีการสร้าง Product ใหม่
type ProductCreatedEvent struct {
	domain.BaseEvent
	Data ProductCreatedData
}

func NewProductCreatedEvent(productID, name string, price float64) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseEvent: domain.NewBaseEvent(ProductCreatedEventType),
		Data: ProductCreatedData{
			ProductID: productID,
			Name:      name,
			Price:     price,
		},
	}
}
