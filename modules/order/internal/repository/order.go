package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-oms/modules/order/internal/model"
	"go-oms/shared/common/errs"
	"go-oms/shared/common/storage/sqldb/transactor"

	"go.opentelemetry.io/otel/trace"
)

var (
	ErrOrderNotFound = errs.NotFoundError("Order not found")
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
	Find(ctx context.Context, id string) (*model.Order, error)
	FindAll(ctx context.Context) ([]*model.Order, error)
}

type orderRepository struct {
	transactor transactor.Transactor
	dbCtx      transactor.DBTXContext
}

// order กับ item ต้องบันทึกพร้อมกัน จึงต้องใช้ transactor ด้วย
func NewOrderRepository(transactor transactor.Transactor, dbCtx transactor.DBTXContext) OrderRepository {
	return &orderRepository{
		transactor: transactor,
		dbCtx:      dbCtx,
	}
}

type orderRow struct {
	ID         string  `db:"id"`
	CustomerID string  `db:"customer_id"`
	Total      float64 `db:"total"`
}

type orderItemRow struct {
	ID        string  `db:"id"`
	OrderID   string  `db:"order_id"`
	ProductID string  `db:"product_id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	Quantity  int     `db:"quantity"`
	Position  int     `db:"position"`
}

func newOrderItemRows(order *model.Order) []orderItemRow {
	items := order.Items()
	rows := make([]orderItemRow, 0, len(items))
	for i, item := range items {
		rows = append(rows, orderItemRow{
			ID:        item.ID(),
			OrderID:   order.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			Position:  i,
		})
	}
	return rows
}

// ยอด total ในตารางเป็นแค่ค่าที่ denormalize ไว้ ตอนโหลดจะคำนวณใหม่จาก item เสมอ
func toDomain(row orderRow, itemRows []orderItemRow) (*model.Order, error) {
	items := make([]model.OrderItem, 0, len(itemRows))
	for _, ir := range itemRows {
		item, err := model.NewOrderItem(ir.ID, ir.ProductID, ir.Name, ir.Price, ir.Quantity)
		if err != nil {
			return nil, errs.PersistenceError("invalid order item row", err)
		}
		items = append(items, item)
	}

	order, err := model.NewOrder(row.ID, row.CustomerID, items)
	if err != nil {
		return nil, errs.PersistenceError("invalid order row", err)
	}
	return order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:OrderRepository:Create")
	defer span.End()

	return r.transactor.WithinTransaction(ctx, func(ctx context.Context, _ func(transactor.PostCommitHook)) error {
		db := r.dbCtx(ctx)
		query := db.Rebind(`INSERT INTO orders (id, customer_id, total) VALUES (?, ?, ?)`)

		qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if _, err := db.ExecContext(qctx, query, order.ID(), order.CustomerID(), order.Total()); err != nil {
			return errs.HandleDBError(fmt.Errorf("an error occurred while inserting order: %w", err))
		}

		return r.insertItems(ctx, order)
	})
}

// Update แทนที่ item ทั้งหมดของ order และบันทึกยอดรวมใหม่ใน transaction เดียว
func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:OrderRepository:Update")
	defer span.End()

	// order ที่ไม่มี item โหลดกลับเป็น model ไม่ได้
	if len(order.Items()) == 0 {
		return model.ErrItemsRequired
	}

	return r.transactor.WithinTransaction(ctx, func(ctx context.Context, _ func(transactor.PostCommitHook)) error {
		db := r.dbCtx(ctx)

		qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		// อัปเดต total ก่อน เพื่อรู้ว่ามี order อยู่จริง
		res, err := db.ExecContext(qctx, db.Rebind(`UPDATE orders SET total = ? WHERE id = ?`), order.Total(), order.ID())
		if err != nil {
			return errs.HandleDBError(fmt.Errorf("an error occurred while updating order: %w", err))
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return errs.HandleDBError(fmt.Errorf("an error occurred while updating order: %w", err))
		}
		if affected == 0 {
			return ErrOrderNotFound
		}

		if _, err := db.ExecContext(qctx, db.Rebind(`DELETE FROM order_items WHERE order_id = ?`), order.ID()); err != nil {
			return errs.HandleDBError(fmt.Errorf("an error occurred while deleting order items: %w", err))
		}

		return r.insertItems(ctx, order)
	})
}

func (r *orderRepository) insertItems(ctx context.Context, order *model.Order) error {
	db := r.dbCtx(ctx)
	query := `
	INSERT INTO order_items (id, order_id, product_id, name, price, quantity, position)
	VALUES (:id, :order_id, :product_id, :name, :price, :quantity, :position)
	`

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, row := range newOrderItemRows(order) {
		if _, err := db.NamedExecContext(ctx, query, row); err != nil {
			return errs.HandleDBError(fmt.Errorf("an error occurred while inserting order item: %w", err))
		}
	}
	return nil
}

func (r *orderRepository) Find(ctx context.Context, id string) (*model.Order, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:OrderRepository:Find")
	defer span.End()

	db := r.dbCtx(ctx)

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var row orderRow
	if err := db.GetContext(ctx, &row, db.Rebind(`SELECT id, customer_id, total FROM orders WHERE id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding an order by id: %w", err))
	}

	var itemRows []orderItemRow
	query := db.Rebind(`
	SELECT id, order_id, product_id, name, price, quantity, position
	FROM order_items
	WHERE order_id = ?
	ORDER BY position
	`)
	if err := db.SelectContext(ctx, &itemRows, query, id); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding order items: %w", err))
	}

	return toDomain(row, itemRows)
}

func (r *orderRepository) FindAll(ctx context.Context) ([]*model.Order, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:OrderRepository:FindAll")
	defer span.End()

	db := r.dbCtx(ctx)

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var rows []orderRow
	if err := db.SelectContext(ctx, &rows, `SELECT id, customer_id, total FROM orders ORDER BY id`); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while listing orders: %w", err))
	}

	var itemRows []orderItemRow
	query := `
	SELECT id, order_id, product_id, name, price, quantity, position
	FROM order_items
	ORDER BY order_id, position
	`
	if err := db.SelectContext(ctx, &itemRows, query); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while listing order items: %w", err))
	}

	itemsByOrder := make(map[string][]orderItemRow, len(rows))
	for _, ir := range itemRows {
		itemsByOrder[ir.OrderID] = append(itemsByOrder[ir.OrderID], ir)
	}

	orders := make([]*model.Order, 0, len(rows))
	for _, row := range rows {
		order, err := toDomain(row, itemsByOrder[row.ID])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
