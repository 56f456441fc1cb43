package stock

import (
	"context"

	"encore.app/events"
	"encore.app/tireorders/model"
	"encore.app/tireorders/store/stockorders"
)

type Business interface {
	CreateStockOrder(ctx context.Context, order *model.StockOrder) (*model.StockOrder, error)
	// CompleteSubmittedOrders runs one fulfillment sweep: every submitted
	// order is driven to completed and announced on the bus.
	CompleteSubmittedOrders(ctx context.Context) (*SweepReport, error)
}

// EventPublisher announces completed stock orders to the bus.
type EventPublisher interface {
	PublishOrderCompleted(ctx context.Context, detail events.StockOrder) (string, error)
}

type business struct {
	stockRepo stockorders.Querier
	publisher EventPublisher
}

// NewStockBusiness creates the business layer for tire stock orders
func NewStockBusiness(stockRepo stockorders.Querier, publisher EventPublisher) Business {
	return &business{stockRepo: stockRepo, publisher: publisher}
}

// convertDBStockOrderToModel converts a database StockOrder to a domain model
func convertDBStockOrderToModel(dbOrder stockorders.StockOrder) *model.StockOrder {
	return &model.StockOrder{
		ID:          dbOrder.ID,
		CarOrderID:  dbOrder.CarOrderID,
		CarType:     dbOrder.CarType,
		OrderStatus: model.StockOrderStatus(dbOrder.OrderStatus),
		CreatedAt:   dbOrder.CreatedAt.Time,
		UpdatedAt:   dbOrder.UpdatedAt.Time,
	}
}
