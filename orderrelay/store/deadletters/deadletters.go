package deadletters

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx used by the dead letter queries.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Querier interface {
	// CreateDeadLetter captures an exhausted delivery verbatim. Nothing in
	// the system consumes these rows; they exist for manual inspection
	// and replay.
	CreateDeadLetter(ctx context.Context, arg CreateDeadLetterParams) error
}

type CreateDeadLetterParams struct {
	EventID     string
	Source      string
	DetailType  string
	Payload     []byte
	PublishedAt time.Time
	Reason      string
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const createDeadLetter = `
INSERT INTO dead_letters (event_id, source, detail_type, payload, published_at, reason)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (q *Queries) CreateDeadLetter(ctx context.Context, arg CreateDeadLetterParams) error {
	_, err := q.db.Exec(ctx, createDeadLetter,
		arg.EventID, arg.Source, arg.DetailType, arg.Payload, arg.PublishedAt, arg.Reason)
	return err
}
