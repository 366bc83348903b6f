package model

import "go-oms/shared/common/idgen"

// CustomerFactory สร้าง Customer พร้อม id ใหม่
type CustomerFactory struct {
	newID func() string
}

func NewCustomerFactory() *CustomerFactory {
	return &CustomerFactory{newID: idgen.NewID}
}

func (f *CustomerFactory) Create(name string) (*Customer, error) {
	return NewCustomer(f.newID(), name)
}

func (f *CustomerFactory) CreateWithAddress(name string, address Address) (*Customer, error) {
	customer, err := f.Create(name)
	if err != nil {
		return nil, err
	}
	customer.ChangeAddress(address)
	return customer, nil
}
