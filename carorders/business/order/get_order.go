package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/carorders/model"
)

// GetOrder retrieves an order by ID
func (b *business) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	dbOrder, err := b.orderRepo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "order not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get order"}
	}

	return convertDBOrderToModel(dbOrder), nil
}
