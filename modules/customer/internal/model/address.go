package model

import (
	"fmt"

	"go-oms/shared/common/errs"
)

var (
	ErrStreetRequired = errs.ValidationError("Street is required")
	ErrNumberPositive = errs.ValidationError("Number must be positive")
	ErrZipRequired    = errs.ValidationError("Zip is required")
	ErrCityRequired   = errs.ValidationError("City is required")
)

// Address เป็น value object เปลี่ยนแปลงไม่ได้หลังสร้าง เปรียบเทียบกันด้วย ==
type Address struct {
	street  string
	number  int
	zipcode string
	city    string
}

func NewAddress(street string, number int, zipcode, city string) (Address, error) {
	a := Address{
		street:  street,
		number:  number,
		zipcode: zipcode,
		city:    city,
	}
	if err := a.validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

// ตรวจทีละ field ตามลำดับ คืน error ตัวแรกที่พบ
func (a Address) validate() error {
	if a.street == "" {
		return ErrStreetRequired
	}
	if a.number <= 0 {
		return ErrNumberPositive
	}
	if a.zipcode == "" {
		return ErrZipRequired
	}
	if a.city == "" {
		return ErrCityRequired
	}
	return nil
}

func (a Address) Street() string  { return a.street }
func (a Address) Number() int     { return a.number }
func (a Address) Zipcode() string { return a.zipcode }
func (a Address) City() string    { return a.city }

func (a Address) String() string {
	return fmt.Sprintf("%s %d %s %s", a.street, a.number, a.zipcode, a.city)
}
