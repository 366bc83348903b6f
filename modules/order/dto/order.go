package dto

type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	CustomerID string      `json:"customer_id"`
	Items      []OrderLine `json:"items"`
}

type OrderItemInfo struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

type OrderInfo struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Items      []OrderItemInfo `json:"items"`
	Total      float64         `json:"total"`
}
