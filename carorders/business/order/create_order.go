package order

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"encore.app/carorders/model"
	"encore.app/carorders/store/orders"
)

// CreateOrder persists a new order as submitted. The id is freshly
// generated, so no existence check is needed before the insert.
func (b *business) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	dbOrder, err := b.orderRepo.CreateOrder(ctx, orders.CreateOrderParams{
		ID:      uuid.NewString(),
		Status:  string(model.OrderStatusSubmitted),
		CarType: order.Type,
		Price:   order.Price,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create order"}
	}

	return convertDBOrderToModel(dbOrder), nil
}
