package stock

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/events"
	"encore.app/pkg/batch"
	"encore.app/tireorders/model"
	"encore.app/tireorders/store/stockorders"
)

// SweepReport summarises one fulfillment sweep run.
type SweepReport struct {
	Selected  int `json:"selected"`
	Completed int `json:"completed"`
	Published int `json:"published"`
}

// CompleteSubmittedOrders drives every submitted stock order to completed
// and emits one completion event per order. Both phases fan out
// concurrently and wait for the whole batch to settle; a failure fails the
// run without undoing writes that already landed. Completed records are
// never re-selected, so a rerun (or an overlapping tick) safely
// re-processes only what is still submitted.
func (b *business) CompleteSubmittedOrders(ctx context.Context) (*SweepReport, error) {
	dbOrders, err := b.stockRepo.ListSubmittedStockOrders(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list submitted stock orders"}
	}

	report := &SweepReport{Selected: len(dbOrders)}
	if len(dbOrders) == 0 {
		return report, nil
	}

	writeResults := batch.Run(ctx, dbOrders, func(ctx context.Context, o stockorders.StockOrder) error {
		return b.stockRepo.CompleteStockOrder(ctx, o.ID)
	})
	report.Completed = len(dbOrders) - len(batch.Failed(writeResults))

	if failures := batch.Failed(writeResults); len(failures) > 0 {
		for _, r := range writeResults {
			if r.Err != nil {
				rlog.Error("failed to complete stock order", "error", r.Err, "stock_order_id", r.Item.ID)
			}
		}
		return report, &errs.Error{Code: errs.Internal, Message: "one or more stock order updates failed"}
	}

	// Announce every order the batch processed. Event delivery from the
	// bus onward is the relay's responsibility; a publish that fails
	// outright here is lost for this cycle and only surfaces as a failed
	// run, since the record is already completed.
	publishResults := batch.Run(ctx, dbOrders, func(ctx context.Context, o stockorders.StockOrder) error {
		detail := events.StockOrder{
			ID:          o.ID,
			CarOrderID:  o.CarOrderID,
			CarType:     o.CarType,
			OrderStatus: string(model.StockOrderStatusCompleted),
		}
		_, err := b.publisher.PublishOrderCompleted(ctx, detail)
		return err
	})
	report.Published = len(dbOrders) - len(batch.Failed(publishResults))

	if failures := batch.Failed(publishResults); len(failures) > 0 {
		for _, r := range publishResults {
			if r.Err != nil {
				rlog.Error("failed to publish completion event", "error", r.Err, "stock_order_id", r.Item.ID, "car_order_id", r.Item.CarOrderID)
			}
		}
		return report, &errs.Error{Code: errs.Internal, Message: "one or more completion events failed to publish"}
	}

	return report, nil
}
