package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/carorders/store/orders"
)

// Store combines all domain-specific repositories
type Store struct {
	Orders orders.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Orders: orders.New(db),
	}
}
