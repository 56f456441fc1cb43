package carorders

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

// GetOrder returns a single order, including whether the supplier's
// completion has been relayed back yet.
//
//encore:api public path=/v1/orders/:id method=GET
func (s *Service) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid order ID"}
	}

	result, err := s.business.GetOrder(ctx, id)
	if err != nil {
		rlog.Error("failed to get order", "error", err, "order_id", id)
		return nil, err
	}

	return &OrderResponse{Order: *result}, nil
}
