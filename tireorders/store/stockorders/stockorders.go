package stockorders

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the subset of pgx used by the stock order queries.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Querier interface {
	CreateStockOrder(ctx context.Context, arg CreateStockOrderParams) (StockOrder, error)
	// ListSubmittedStockOrders returns every stock order still awaiting
	// fulfillment, however many there are; the sweep processes the whole
	// set in one run.
	ListSubmittedStockOrders(ctx context.Context) ([]StockOrder, error)
	// CompleteStockOrder overwrites the order's status with the terminal
	// value. Idempotent: re-completing a completed order is a no-op write.
	CompleteStockOrder(ctx context.Context, id string) error
}

type StockOrder struct {
	ID          string
	CarOrderID  string
	CarType     string
	OrderStatus string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type CreateStockOrderParams struct {
	ID          string
	CarOrderID  string
	CarType     string
	OrderStatus string
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const createStockOrder = `
INSERT INTO stock_orders (id, car_order_id, car_type, order_status)
VALUES ($1, $2, $3, $4)
RETURNING id, car_order_id, car_type, order_status, created_at, updated_at
`

func (q *Queries) CreateStockOrder(ctx context.Context, arg CreateStockOrderParams) (StockOrder, error) {
	row := q.db.QueryRow(ctx, createStockOrder, arg.ID, arg.CarOrderID, arg.CarType, arg.OrderStatus)
	var o StockOrder
	err := row.Scan(&o.ID, &o.CarOrderID, &o.CarType, &o.OrderStatus, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const listSubmittedStockOrders = `
SELECT id, car_order_id, car_type, order_status, created_at, updated_at
FROM stock_orders
WHERE order_status = 'submitted'
ORDER BY created_at
`

func (q *Queries) ListSubmittedStockOrders(ctx context.Context) ([]StockOrder, error) {
	rows, err := q.db.Query(ctx, listSubmittedStockOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []StockOrder
	for rows.Next() {
		var o StockOrder
		if err := rows.Scan(&o.ID, &o.CarOrderID, &o.CarType, &o.OrderStatus, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const completeStockOrder = `
UPDATE stock_orders
SET order_status = 'completed', updated_at = NOW()
WHERE id = $1
`

func (q *Queries) CompleteStockOrder(ctx context.Context, id string) error {
	_, err := q.db.Exec(ctx, completeStockOrder, id)
	return err
}
