package event

import (
	"go-oms/shared/common/domain"
)

const (
	CustomerAddressChangedEventType domain.EventName = "CustomerAddressChangedEvent"
)

type CustomerAddressChangedData struct {
	CustomerID   string
	CustomerName string
	Address      string // address ในรูปแบบ "street number zipcode city"
}

// CustomerAddressChangedEvent เกิดขึ้นเมื่อ Customer เปลี่ยนที่อยู่
type CustomerAddressChangedEvent struct {
	domain.BaseEvent
	Data CustomerAddressChangedData
}

func NewCustomerAddressChangedEvent(customerID, customerName, address string) *CustomerAddressChangedEvent {
	return &CustomerAddressChangedEvent{
		BaseEvent: domain.NewBaseEvent(CustomerAddressChangedEventType),
		Data: CustomerAddressChangedData{
			CustomerID:   customerID,
			CustomerName: customerName,
			Address:      address,
		},
	}
}
