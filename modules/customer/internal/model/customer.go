package model

import (
	"go-oms/shared/common/errs"
)

var (
	ErrIDRequired              = errs.ValidationError("Id is required")
	ErrNameRequired            = errs.ValidationError("Name is required")
	ErrAddressMandatory        = errs.ValidationError("Address is mandatory to activate a costumer")
	ErrRewardPointsNotNegative = errs.ValidationError("Reward points must not be negative")
)

// Customer มีสถานะ inactive/active เริ่มต้นเป็น inactive
// จะ activate ได้ก็ต่อเมื่อมี address แล้วเท่านั้น
type Customer struct {
	id           string
	name         string
	address      *Address
	active       bool
	rewardPoints int
}

func NewCustomer(id, name string) (*Customer, error) {
	c := &Customer{
		id:   id,
		name: name,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Customer) validate() error {
	if c.id == "" {
		return ErrIDRequired
	}
	if c.name == "" {
		return ErrNameRequired
	}
	return nil
}

func (c *Customer) ID() string   { return c.id }
func (c *Customer) Name() string { return c.name }

// Address คืนค่า address และ false ถ้ายังไม่ได้กำหนด
func (c *Customer) Address() (Address, bool) {
	if c.address == nil {
		return Address{}, false
	}
	return *c.address, true
}

func (c *Customer) IsActive() bool    { return c.active }
func (c *Customer) RewardPoints() int { return c.rewardPoints }

func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	c.name = name
	return nil
}

func (c *Customer) ChangeAddress(address Address) {
	c.address = &address
}

func (c *Customer) Activate() error {
	if c.address == nil {
		return ErrAddressMandatory
	}
	c.active = true
	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
}

func (c *Customer) AddRewardPoints(points int) error {
	if points < 0 {
		return ErrRewardPointsNotNegative
	}
	c.rewardPoints += points
	return nil
}
