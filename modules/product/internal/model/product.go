package model

import "go-oms/shared/common/errs"

var (
	ErrIDRequired    = errs.ValidationError("Id is required")
	ErrNameRequired  = errs.ValidationError("Name is required")
	ErrPricePositive = errs.ValidationError("Price must be greater than zero")
)

// Product เปลี่ยนแปลงไม่ได้หลังสร้าง
type Product struct {
	id    string
	name  string
	price float64
}

func NewProduct(id, name string, price float64) (*Product, error) {
	p := &Product{
		id:    id,
		name:  name,
		price: price,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) validate() error {
	if p.id == "" {
		return ErrIDRequired
	}
	if p.name == "" {
		return ErrNameRequired
	}
	if p.price <= 0 {
		return ErrPricePositive
	}
	return nil
}

func (p *Product) ID() string     { return p.id }
func (p *Product) Name() string   { return p.name }
func (p *Product) Price() float64 { return p.price }
