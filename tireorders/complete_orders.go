package tireorders

import (
	"context"

	"encore.dev/cron"
	"encore.dev/rlog"
)

// Sweep pending stock orders every minute, decoupled from the synchronous
// request path.
var _ = cron.NewJob("complete-tire-orders", cron.JobConfig{
	Title:    "Complete submitted tire orders",
	Every:    1 * cron.Minute,
	Endpoint: CompleteOrders,
})

// CompleteOrders runs one fulfillment sweep. Errors propagate to the
// scheduler so a failed run is visible to operational monitoring.
//
//encore:api private method=POST path=/internal/stock-orders/sweep
func CompleteOrders(ctx context.Context) error {
	report, err := stockBusiness().CompleteSubmittedOrders(ctx)
	if err != nil {
		rlog.Error("fulfillment sweep failed", "error", err)
		return err
	}

	if report.Selected > 0 {
		rlog.Info("fulfillment sweep finished",
			"selected", report.Selected,
			"completed", report.Completed,
			"published", report.Published,
		)
	}
	return nil
}
