package service_test

import (
	"context"
	"testing"

	"go-oms/modules/product/dto"
	"go-oms/modules/product/internal/domain/event"
	"go-oms/modules/product/internal/repository"
	"go-oms/modules/product/service"
	"go-oms/shared/common/domain"
	"go-oms/shared/common/errs"
	"go-oms/shared/common/storage/sqldb/sqldbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventRecorder struct {
	events []domain.Event
}

func (r *eventRecorder) Handle(_ context.Context, evt domain.Event) error {
	r.events = append(r.events, evt)
	return nil
}

func newService(t *testing.T) (service.ProductService, *eventRecorder) {
	t.Helper()
	_, tx, dbCtx := sqldbtest.NewTransactor(t)
	rec := &eventRecorder{}
	dispatcher := domain.NewEventDispatcher()
	dispatcher.Register(event.ProductCreatedEventType, rec)
	return service.NewProductService(tx, repository.NewProductRepository(dbCtx), dispatcher), rec
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and publishes ProductCreated", func(t *testing.T) {
		svc, rec := newService(t)

		info, err := svc.CreateProduct(ctx, &dto.CreateProductRequest{Name: "Product 1", Price: 10})

		require.NoError(t, err)
		got, err := svc.GetProductByID(ctx, info.ID)
		require.NoError(t, err)
		assert.Equal(t, info, got)

		require.Len(t, rec.events, 1)
		evt := rec.events[0].(*event.ProductCreatedEvent)
		assert.Equal(t, event.ProductCreatedData{ProductID: info.ID, Name: "Product 1", Price: 10}, evt.Data)
	})

	t.Run("invalid price", func(t *testing.T) {
		svc, rec := newService(t)

		_, err := svc.CreateProduct(ctx, &dto.CreateProductRequest{Name: "Product 1", Price: 0})

		assert.EqualError(t, err, "Price must be greater than zero")
		assert.Empty(t, rec.events)
	})
}

func TestGetProductByID(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.GetProductByID(context.Background(), "missing")

	assert.True(t, errs.IsNotFound(err))
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.CreateProduct(ctx, &dto.CreateProductRequest{Name: "A", Price: 1})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, &dto.CreateProductRequest{Name: "B", Price: 2})
	require.NoError(t, err)

	list, err := svc.ListProducts(ctx)

	require.NoError(t, err)
	assert.Len(t, list, 2)
}
