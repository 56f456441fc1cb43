package stock

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"

	"encore.app/tireorders/model"
	"encore.app/tireorders/store/stockorders"
)

// CreateStockOrder records a new tire order for the referenced car order.
// The car order id is a lookup-only reference; this side never owns or
// verifies the buyer's record.
func (b *business) CreateStockOrder(ctx context.Context, order *model.StockOrder) (*model.StockOrder, error) {
	dbOrder, err := b.stockRepo.CreateStockOrder(ctx, stockorders.CreateStockOrderParams{
		ID:          uuid.NewString(),
		CarOrderID:  order.CarOrderID,
		CarType:     order.CarType,
		OrderStatus: string(model.StockOrderStatusSubmitted),
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "stock order already exists for this car order"}
		}

		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create stock order"}
	}

	return convertDBStockOrderToModel(dbOrder), nil
}
