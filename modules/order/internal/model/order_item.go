package model

import "go-oms/shared/common/errs"

var (
	ErrItemIDRequired    = errs.ValidationError("Id is required")
	ErrItemNameRequired  = errs.ValidationError("Name is required")
	ErrPricePositive     = errs.ValidationError("Price must be greater than zero")
	ErrProductIDRequired = errs.ValidationError("ProductId is required")
	ErrQuantityPositive  = errs.ValidationError("Quantity must be greater than zero")
)

// OrderItem เก็บ snapshot ของ product ณ เวลาที่สั่ง (ชื่อและราคา)
type OrderItem struct {
	id        string
	productID string
	name      string
	price     float64
	quantity  int
}

func NewOrderItem(id, productID, name string, price float64, quantity int) (OrderItem, error) {
	item := OrderItem{
		id:        id,
		productID: productID,
		name:      name,
		price:     price,
		quantity:  quantity,
	}
	if err := item.validate(); err != nil {
		return OrderItem{}, err
	}
	return item, nil
}

// ลำดับการตรวจ: id, name, price, productId, quantity
func (i OrderItem) validate() error {
	if i.id == "" {
		return ErrItemIDRequired
	}
	if i.name == "" {
		return ErrItemNameRequired
	}
	if i.price <= 0 {
		return ErrPricePositive
	}
	if i.productID == "" {
		return ErrProductIDRequired
	}
	if i.quantity <= 0 {
		return ErrQuantityPositive
	}
	return nil
}

func (i OrderItem) ID() string        { return i.id }
func (i OrderItem) ProductID() string { return i.productID }
func (i OrderItem) Name() string      { return i.name }
func (i OrderItem) Price() float64    { return i.price }
func (i OrderItem) Quantity() int     { return i.quantity }

func (i OrderItem) Total() float64 {
	return i.price * float64(i.quantity)
}

// WithQuantity คืน item ใหม่ที่เปลี่ยนจำนวน โดยตรวจ invariant ซ้ำ
func (i OrderItem) WithQuantity(quantity int) (OrderItem, error) {
	return NewOrderItem(i.id, i.productID, i.name, i.price, quantity)
}
