package event

import (
	"go-oms/shared/common/domain"
)

const (
	CustomerCreatedEventType domain.EventName = "CustomerCreatedEvent"
)

type CustomerCreatedData struct {
	CustomerID string
	Name       string
}

// CustomerCreatedEvent เกิดขึ้นเมื่อมีการสร้าง Customer ใหม่ในระบบ
type CustomerCreatedEvent struct {
	// ฝัง BaseEvent ที่มีชื่อและเวลาเกิด event
	domain.BaseEvent
	Data CustomerCreatedData
}

func NewCustomerCreatedEvent(customerID, name string) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseEvent: domain.NewBaseEvent(CustomerCreatedEventType),
		Data: CustomerCreatedData{
			CustomerID: customerID,
			Name:       name,
		},
	}
}
