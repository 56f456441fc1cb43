package carorders

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/carorders/model"
)

type CreateOrderRequest struct {
	Type  string `json:"type" validate:"required,max=255"`
	Price string `json:"price" validate:"required,max=32"`
}

type OrderResponse struct {
	Order model.Order `json:"order"`
}

// CreateOrder accepts a new car order, persists it as submitted, and
// forwards it to the supplier with the cached token. The local record is
// deliberately kept even when the downstream call fails: that window is
// closed by out-of-band reconciliation, not by rolling back here.
//
//encore:api public path=/v1/orders method=POST
func (s *Service) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderResponse, error) {
	result, err := s.business.CreateOrder(ctx, &model.Order{
		Type:  req.Type,
		Price: req.Price,
	})
	if err != nil {
		rlog.Error("failed to create order", "error", err)
		return nil, err
	}

	tok, err := s.tokens.GetToken(ctx)
	if err != nil {
		rlog.Error("supplier token unavailable", "error", err, "order_id", result.ID)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "upstream auth unavailable"}
	}

	if err := s.supplier.CreateStockOrder(ctx, tok, result); err != nil {
		rlog.Error("failed to forward order to supplier", "error", err, "order_id", result.ID)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to forward order to supplier"}
	}

	return &OrderResponse{Order: *result}, nil
}

// Validate implements validation for CreateOrderRequest using go-playground/validator
func (r *CreateOrderRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
