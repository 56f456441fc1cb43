package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/tireorders/store/stockorders"
)

// Store combines all domain-specific repositories
type Store struct {
	StockOrders stockorders.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		StockOrders: stockorders.New(db),
	}
}
