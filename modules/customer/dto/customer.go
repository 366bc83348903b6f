package dto

type AddressRequest struct {
	Street  string `json:"street"`
	Number  int    `json:"number"`
	Zipcode string `json:"zipcode"`
	City    string `json:"city"`
}

type CreateCustomerRequest struct {
	Name    string          `json:"name"`
	Address *AddressRequest `json:"address,omitempty"` // ไม่บังคับ
}
