package model

import "go-oms/shared/common/errs"

var (
	ErrIDRequired         = errs.ValidationError("Id is required")
	ErrCustomerIDRequired = errs.ValidationError("CustomerId is required")
	ErrItemsRequired      = errs.ValidationError("Items are required")
	ErrItemNotFound       = errs.NotFoundError("Item not found")
	ErrDuplicateItem      = errs.ValidationError("Item already exists")
)

// Order ต้องมี item อย่างน้อยหนึ่งรายการตอนสร้าง id ของ item ต้องไม่ซ้ำกัน
// ยอดรวมคำนวณใหม่จาก item ทุกครั้งที่อ่าน
type Order struct {
	id         string
	customerID string
	items      []OrderItem
}

func NewOrder(id, customerID string, items []OrderItem) (*Order, error) {
	o := &Order{
		id:         id,
		customerID: customerID,
		items:      append([]OrderItem(nil), items...),
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) validate() error {
	if o.id == "" {
		return ErrIDRequired
	}
	if o.customerID == "" {
		return ErrCustomerIDRequired
	}
	if len(o.items) == 0 {
		return ErrItemsRequired
	}
	for i, item := range o.items {
		if err := item.validate(); err != nil {
			return err
		}
		if o.indexOf(item.ID()) != i {
			return ErrDuplicateItem
		}
	}
	return nil
}

func (o *Order) ID() string         { return o.id }
func (o *Order) CustomerID() string { return o.customerID }

// Items คืนสำเนา แก้ไขแล้วไม่กระทบ order
func (o *Order) Items() []OrderItem {
	return append([]OrderItem(nil), o.items...)
}

func (o *Order) AddItem(item OrderItem) error {
	if err := item.validate(); err != nil {
		return err
	}
	if o.indexOf(item.ID()) >= 0 {
		return ErrDuplicateItem
	}
	o.items = append(o.items, item)
	return nil
}

// UpdateItem แทนที่ item ที่มี id เดียวกันโดยคงตำแหน่งเดิม
func (o *Order) UpdateItem(item OrderItem) error {
	if err := item.validate(); err != nil {
		return err
	}
	idx := o.indexOf(item.ID())
	if idx < 0 {
		return ErrItemNotFound
	}
	o.items[idx] = item
	return nil
}

func (o *Order) RemoveItem(itemID string) error {
	idx := o.indexOf(itemID)
	if idx < 0 {
		return ErrItemNotFound
	}

	items := make([]OrderItem, 0, len(o.items)-1)
	items = append(items, o.items[:idx]...)
	o.items = append(items, o.items[idx+1:]...)
	return nil
}

func (o *Order) Item(itemID string) (OrderItem, bool) {
	idx := o.indexOf(itemID)
	if idx < 0 {
		return OrderItem{}, false
	}
	return o.items[idx], true
}

func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Total()
	}
	return total
}

func (o *Order) indexOf(itemID string) int {
	for i, item := range o.items {
		if item.ID() == itemID {
			return i
		}
	}
	return -1
}

// TotalOf รวมยอดของหลาย order
func TotalOf(orders []*Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Total()
	}
	return total
}
