package order

import (
	"context"

	"encore.dev/beta/errs"
)

// CompleteOrder sets an existing order to completed. The update is
// conditional on the record existing; completing an unknown order fails
// and never creates one. Re-completing an already completed order is a
// harmless re-assertion of the same terminal value.
func (b *business) CompleteOrder(ctx context.Context, id string) error {
	rows, err := b.orderRepo.CompleteOrder(ctx, id)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to complete order"}
	}
	if rows == 0 {
		return &errs.Error{Code: errs.FailedPrecondition, Message: "order does not exist"}
	}
	return nil
}
