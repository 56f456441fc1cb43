package model

import (
	"time"
)

type StockOrder struct {
	ID          string           `json:"id"`
	CarOrderID  string           `json:"carOrderId"`
	CarType     string           `json:"carType"`
	OrderStatus StockOrderStatus `json:"orderStatus"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type StockOrderStatus string

const (
	// StockOrderStatusSubmitted is the initial status, set on receipt of
	// the buyer's order.
	StockOrderStatusSubmitted StockOrderStatus = "submitted"
	// StockOrderStatusCompleted is terminal; only the fulfillment sweep
	// performs the transition.
	StockOrderStatusCompleted StockOrderStatus = "completed"
)
