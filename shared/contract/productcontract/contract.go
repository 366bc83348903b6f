package productcontract

import (
	"context"

	"go-oms/shared/common/registry"
)

const (
	ProductReaderKey registry.ServiceKey = "product:contract:reader"
)

type ProductInfo struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ProductReader interface {
	GetProductByID(ctx context.Context, id string) (*ProductInfo, error)
}
