package tireorders

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tireorders/model"
)

type CreateStockOrderRequest struct {
	// ID is the buyer's order id, the only correlation key between the
	// two domains.
	ID     string `json:"id" validate:"required,uuid4"`
	Type   string `json:"type" validate:"required,max=255"`
	Status string `json:"status" validate:"omitempty,max=32"`
	Price  string `json:"price" validate:"omitempty,max=32"`
}

type StockOrderResponse struct {
	StockOrder model.StockOrder `json:"stockOrder"`
}

// CreateStockOrder places a tire order for the referenced car order. The
// partnerauth tag requires the caller's bearer token and API key.
//
//encore:api public path=/v1/stock-orders method=POST tag:partnerauth
func (s *Service) CreateStockOrder(ctx context.Context, req *CreateStockOrderRequest) (*StockOrderResponse, error) {
	result, err := s.business.CreateStockOrder(ctx, &model.StockOrder{
		CarOrderID: req.ID,
		CarType:    req.Type,
	})
	if err != nil {
		rlog.Error("failed to create stock order", "error", err, "car_order_id", req.ID)
		return nil, err
	}

	rlog.Info("stock order created", "stock_order_id", result.ID, "car_order_id", result.CarOrderID)
	return &StockOrderResponse{StockOrder: *result}, nil
}

// Validate implements validation for CreateStockOrderRequest using go-playground/validator
func (r *CreateStockOrderRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
