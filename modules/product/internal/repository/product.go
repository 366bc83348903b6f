package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-oms/modules/product/internal/model"
	"go-oms/shared/common/errs"
	"go-oms/shared/common/storage/sqldb/transactor"

	"go.opentelemetry.io/otel/trace"
)

var (
	ErrProductNotFound = errs.NotFoundError("Product not found")
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Find(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context) ([]*model.Product, error)
}

type productRepository struct {
	dbCtx transactor.DBTXContext
}

func NewProductRepository(dbCtx transactor.DBTXContext) ProductRepository {
	return &productRepository{
		dbCtx: dbCtx,
	}
}

type productRow struct {
	ID    string  `db:"id"`
	Name  string  `db:"name"`
	Price float64 `db:"price"`
}

func (row productRow) toDomain() (*model.Product, error) {
	return model.NewProduct(row.ID, row.Name, row.Price)
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:ProductRepository:Create")
	defer span.End()

	db := r.dbCtx(ctx)
	query := db.Rebind(`INSERT INTO products (id, name, price) VALUES (?, ?, ?)`)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, query, product.ID(), product.Name(), product.Price()); err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while inserting product: %w", err))
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:ProductRepository:Update")
	defer span.End()

	db := r.dbCtx(ctx)
	query := db.Rebind(`UPDATE products SET name = ?, price = ? WHERE id = ?`)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := db.ExecContext(ctx, query, product.Name(), product.Price(), product.ID())
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while updating product: %w", err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while updating product: %w", err))
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *productRepository) Find(ctx context.Context, id string) (*model.Product, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:ProductRepository:Find")
	defer span.End()

	db := r.dbCtx(ctx)
	query := db.Rebind(`SELECT id, name, price FROM products WHERE id = ?`)

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var row productRow
	if err := db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding a product by id: %w", err))
	}

	product, err := row.toDomain()
	if err != nil {
		return nil, errs.PersistenceError("invalid product row", err)
	}
	return product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]*model.Product, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:ProductRepository:FindAll")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var rows []productRow
	if err := r.dbCtx(ctx).SelectContext(ctx, &rows, `SELECT id, name, price FROM products ORDER BY id`); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while listing products: %w", err))
	}

	products := make([]*model.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, errs.PersistenceError("invalid product row", err)
		}
		products = append(products, p)
	}
	return products, nil
}
