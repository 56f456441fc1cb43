package model

import (
	"time"
)

type Order struct {
	ID        string      `json:"id"`
	Status    OrderStatus `json:"status"`
	Type      string      `json:"type"`
	Price     string      `json:"price"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type OrderStatus string

const (
	// OrderStatusSubmitted is set on creation; the order stays submitted
	// until the supplier's completion event is relayed back.
	OrderStatusSubmitted OrderStatus = "submitted"
	// OrderStatusCompleted is terminal and set only by the completion webhook.
	OrderStatusCompleted OrderStatus = "completed"
)
