package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/orderrelay/store/deadletters"
)

// Store combines all domain-specific repositories
type Store struct {
	DeadLetters deadletters.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		DeadLetters: deadletters.New(db),
	}
}
