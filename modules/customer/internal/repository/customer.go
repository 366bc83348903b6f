package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-oms/modules/customer/internal/model"
	"go-oms/shared/common/errs"
	"go-oms/shared/common/storage/sqldb/transactor"

	"go.opentelemetry.io/otel/trace"
)

var (
	ErrCustomerNotFound = errs.NotFoundError("Customer not found")
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	Update(ctx context.Context, customer *model.Customer) error
	Find(ctx context.Context, id string) (*model.Customer, error)
	FindAll(ctx context.Context) ([]*model.Customer, error)
}

type customerRepository struct {
	dbCtx transactor.DBTXContext
}

func NewCustomerRepository(dbCtx transactor.DBTXContext) CustomerRepository {
	return &customerRepository{
		dbCtx: dbCtx,
	}
}

// customerRow คือรูปแบบของแถวในตาราง customers
// address เป็น optional จึงใช้ sql.Null* ทุก field ของ address
type customerRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Street       sql.NullString `db:"street"`
	Number       sql.NullInt64  `db:"number"`
	Zipcode      sql.NullString `db:"zipcode"`
	City         sql.NullString `db:"city"`
	Active       bool           `db:"active"`
	RewardPoints int            `db:"reward_points"`
}

func newCustomerRow(c *model.Customer) customerRow {
	row := customerRow{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}
	if a, ok := c.Address(); ok {
		row.Street = sql.NullString{String: a.Street(), Valid: true}
		row.Number = sql.NullInt64{Int64: int64(a.Number()), Valid: true}
		row.Zipcode = sql.NullString{String: a.Zipcode(), Valid: true}
		row.City = sql.NullString{String: a.City(), Valid: true}
	}
	return row
}

// toDomain สร้าง Customer กลับผ่าน method ของ model เพื่อให้ invariant ถูกตรวจซ้ำ
func (row customerRow) toDomain() (*model.Customer, error) {
	c, err := model.NewCustomer(row.ID, row.Name)
	if err != nil {
		return nil, err
	}
	if row.Street.Valid {
		a, err := model.NewAddress(row.Street.String, int(row.Number.Int64), row.Zipcode.String, row.City.String)
		if err != nil {
			return nil, err
		}
		c.ChangeAddress(a)
	}
	if row.Active {
		if err := c.Activate(); err != nil {
			return nil, err
		}
	}
	if err := c.AddRewardPoints(row.RewardPoints); err != nil {
		return nil, err
	}
	return c, nil
}

const customerColumns = `id, name, street, number, zipcode, city, active, reward_points`

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:Create")
	defer span.End()

	row := newCustomerRow(customer)
	db := r.dbCtx(ctx)
	query := db.Rebind(`
	INSERT INTO customers (` + customerColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)

	// กำหนด timeout ของ query
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := db.ExecContext(ctx, query,
		row.ID, row.Name, row.Street, row.Number, row.Zipcode, row.City, row.Active, row.RewardPoints)
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while inserting customer: %w", err))
	}
	return nil
}

func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:Update")
	defer span.End()

	row := newCustomerRow(customer)
	db := r.dbCtx(ctx)
	query := db.Rebind(`
	UPDATE customers
	SET name = ?, street = ?, number = ?, zipcode = ?, city = ?, active = ?, reward_points = ?
	WHERE id = ?
	`)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := db.ExecContext(ctx, query,
		row.Name, row.Street, row.Number, row.Zipcode, row.City, row.Active, row.RewardPoints, row.ID)
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while updating customer: %w", err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while updating customer: %w", err))
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) Find(ctx context.Context, id string) (*model.Customer, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:Find")
	defer span.End()

	db := r.dbCtx(ctx)
	query := db.Rebind(`
	SELECT ` + customerColumns + `
	FROM customers
	WHERE id = ?
	`)

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var row customerRow
	if err := db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding a customer by id: %w", err))
	}

	customer, err := row.toDomain()
	if err != nil {
		return nil, errs.PersistenceError("invalid customer row", err)
	}
	return customer, nil
}

func (r *customerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:FindAll")
	defer span.End()

	query := `
	SELECT ` + customerColumns + `
	FROM customers
	ORDER BY id
	`

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var rows []customerRow
	if err := r.dbCtx(ctx).SelectContext(ctx, &rows, query); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while listing customers: %w", err))
	}

	customers := make([]*model.Customer, 0, len(rows))
	for _, row := range rows {
		c, err := row.toDomain()
		if err != nil {
			return nil, errs.PersistenceError("invalid customer row", err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}
