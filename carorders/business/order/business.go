package order

import (
	"context"

	"encore.app/carorders/model"
	"encore.app/carorders/store/orders"
)

type Business interface {
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	CompleteOrder(ctx context.Context, id string) error
}

type business struct {
	orderRepo orders.Querier
}

// NewOrderBusiness creates the business layer for car orders
func NewOrderBusiness(orderRepo orders.Querier) Business {
	return &business{orderRepo: orderRepo}
}

// convertDBOrderToModel converts a database Order to a domain model Order
func convertDBOrderToModel(dbOrder orders.Order) *model.Order {
	return &model.Order{
		ID:        dbOrder.ID,
		Status:    model.OrderStatus(dbOrder.Status),
		Type:      dbOrder.CarType,
		Price:     dbOrder.Price,
		CreatedAt: dbOrder.CreatedAt.Time,
		UpdatedAt: dbOrder.UpdatedAt.Time,
	}
}
