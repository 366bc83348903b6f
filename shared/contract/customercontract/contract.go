package customercontract

import (
	"context"

	"go-oms/shared/common/registry"
)

const (
	RewardManagerKey registry.ServiceKey = "customer:contract:reward"
)

type CustomerInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	Active       bool   `json:"active"`
	RewardPoints int    `json:"reward_points"`
}

type CustomerReader interface {
	GetCustomerByID(ctx context.Context, id string) (*CustomerInfo, error)
}

type RewardManager interface {
	CustomerReader // embed เพื่อ reuse
	AddRewardPoints(ctx context.Context, id string, points int) error
}
