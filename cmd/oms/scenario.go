package main

import (
	"context"

	"go-oms/modules/customer"
	customerdto "go-oms/modules/customer/dto"
	customerservice "go-oms/modules/customer/service"
	"go-oms/modules/order"
	orderdto "go-oms/modules/order/dto"
	orderservice "go-oms/modules/order/service"
	"go-oms/modules/product"
	productdto "go-oms/modules/product/dto"
	productservice "go-oms/modules/product/service"
	"go-oms/shared/common/logger"
	"go-oms/shared/common/registry"

	"go.uber.org/zap"
)

// runScenario สร้าง customer พร้อมที่อยู่ สินค้าสองรายการ และ order หนึ่งรายการ
func runScenario(ctx context.Context, reg registry.ServiceRegistry) error {
	custSvc, err := registry.ResolveAs[customerservice.CustomerService](reg, customer.CustomerServiceKey)
	if err != nil {
		return err
	}
	productSvc, err := registry.ResolveAs[productservice.ProductService](reg, product.ProductServiceKey)
	if err != nil {
		return err
	}
	orderSvc, err := registry.ResolveAs[orderservice.OrderService](reg, order.OrderServiceKey)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)

	cust, err := custSvc.CreateCustomer(ctx, &customerdto.CreateCustomerRequest{Name: "Hugo Albuquerque"})
	if err != nil {
		return err
	}
	err = custSvc.ChangeAddress(ctx, cust.ID, &customerdto.AddressRequest{
		Street:  "Rua Um",
		Number:  2,
		Zipcode: "12345-678",
		City:    "Recife",
	})
	if err != nil {
		return err
	}
	if err := custSvc.Activate(ctx, cust.ID); err != nil {
		return err
	}

	item1, err := productSvc.CreateProduct(ctx, &productdto.CreateProductRequest{Name: "Item 1", Price: 10})
	if err != nil {
		return err
	}
	item2, err := productSvc.CreateProduct(ctx, &productdto.CreateProductRequest{Name: "Item 2", Price: 15})
	if err != nil {
		return err
	}

	placed, err := orderSvc.PlaceOrder(ctx, &orderdto.PlaceOrderRequest{
		CustomerID: cust.ID,
		Items: []orderdto.OrderLine{
			{ProductID: item1.ID, Quantity: 2},
			{ProductID: item2.ID, Quantity: 2},
		},
	})
	if err != nil {
		return err
	}
	log.Info("Order placed", zap.String("order_id", placed.ID), zap.Float64("total", placed.Total))

	cust, err = custSvc.GetCustomerByID(ctx, cust.ID)
	if err != nil {
		return err
	}
	log.Info("Customer",
		zap.String("customer_id", cust.ID),
		zap.String("address", cust.Address),
		zap.Bool("active", cust.Active),
		zap.Int("reward_points", cust.RewardPoints),
	)

	total, err := orderSvc.SalesTotal(ctx)
	if err != nil {
		return err
	}
	log.Info("Sales total", zap.Float64("total", total))

	return nil
}
