package service

import (
	"context"

	"go-oms/modules/product/dto"
	"go-oms/modules/product/internal/domain/event"
	"go-oms/modules/product/internal/model"
	"go-oms/modules/product/internal/repository"
	"go-oms/shared/common/domain"
	"go-oms/shared/common/idgen"
	"go-oms/shared/common/logger"
	"go-oms/shared/common/storage/sqldb/transactor"
	"go-oms/shared/contract/productcontract"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type ProductService interface {
	productcontract.ProductReader
	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*productcontract.ProductInfo, error)
	ListProducts(ctx context.Context) ([]*productcontract.ProductInfo, error)
}

type productService struct {
	transactor  transactor.Transactor
	productRepo repository.ProductRepository
	dispatcher  domain.EventDispatcher
}

func NewProductService(
	transactor transactor.Transactor,
	productRepo repository.ProductRepository,
	dispatcher domain.EventDispatcher,
) ProductService {
	return &productService{
		transactor:  transactor,
		productRepo: productRepo,
		dispatcher:  dispatcher,
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*productcontract.ProductInfo, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("service")
	ctx, span := tracer.Start(ctx, "Service:ProductService:CreateProduct")
	defer span.End()

	product, err := model.NewProduct(idgen.NewID(), req.Name, req.Price)
	if err != nil {
		return nil, err
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, registerPostCommitHook func(transactor.PostCommitHook)) error {
		if err := s.productRepo.Create(ctx, product); err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}

		evt := event.NewProductCreatedEvent(product.ID(), product.Name(), product.Price())
		registerPostCommitHook(func(ctx context.Context) error {
			return s.dispatcher.Notify(ctx, evt)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toProductInfo(product), nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*productcontract.ProductInfo, error) {
	product, err := s.productRepo.Find(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error(), zap.String("product_id", id))
		return nil, err
	}
	return toProductInfo(product), nil
}

func (s *productService) ListProducts(ctx context.Context) ([]*productcontract.ProductInfo, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	infos := make([]*productcontract.ProductInfo, 0, len(products))
	for _, p := range products {
		infos = append(infos, toProductInfo(p))
	}
	return infos, nil
}

func toProductInfo(p *model.Product) *productcontract.ProductInfo {
	return &productcontract.ProductInfo{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}
