package orders

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the subset of pgx used by the order queries, so they run
// against either a pool or a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Querier interface {
	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	GetOrder(ctx context.Context, id string) (Order, error)
	// CompleteOrder conditionally marks an existing order completed and
	// returns the number of rows updated. Zero rows means the order does
	// not exist; no row is ever created here.
	CompleteOrder(ctx context.Context, id string) (int64, error)
}

type Order struct {
	ID        string
	Status    string
	CarType   string
	Price     string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type CreateOrderParams struct {
	ID      string
	Status  string
	CarType string
	Price   string
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const createOrder = `
INSERT INTO orders (id, status, car_type, price)
VALUES ($1, $2, $3, $4)
RETURNING id, status, car_type, price, created_at, updated_at
`

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder, arg.ID, arg.Status, arg.CarType, arg.Price)
	var o Order
	err := row.Scan(&o.ID, &o.Status, &o.CarType, &o.Price, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const getOrder = `
SELECT id, status, car_type, price, created_at, updated_at
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrder(ctx context.Context, id string) (Order, error) {
	row := q.db.QueryRow(ctx, getOrder, id)
	var o Order
	err := row.Scan(&o.ID, &o.Status, &o.CarType, &o.Price, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const completeOrder = `
UPDATE orders
SET status = 'completed', updated_at = NOW()
WHERE id = $1
`

func (q *Queries) CompleteOrder(ctx context.Context, id string) (int64, error) {
	tag, err := q.db.Exec(ctx, completeOrder, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
