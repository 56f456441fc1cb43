package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"encore.app/events"
)

// DeliverCompletionParams carries one completion event through the relay
// pipeline. Deadline and MaxAttempts are fixed when the workflow starts so
// the workflow itself stays deterministic.
type DeliverCompletionParams struct {
	Event       events.OrderCompleted `json:"event"`
	Deadline    time.Time             `json:"deadline"`
	MaxAttempts int32                 `json:"max_attempts"`
}

// DeliverCompletion pushes a completion event across the trust boundary
// into the buyer domain. Delivery is retried with backoff up to the
// attempt budget and never past the event's age deadline; exhaustion ends
// in the dead-letter sink, the pipeline's only terminal failure path.
func DeliverCompletion(ctx workflow.Context, params DeliverCompletionParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting completion delivery", "eventID", params.Event.ID, "carOrderID", params.Event.Detail.CarOrderID)

	now := workflow.Now(ctx)
	if !now.Before(params.Deadline) {
		logger.Warn("Event exceeded max age before delivery", "eventID", params.Event.ID, "deadline", params.Deadline)
		return deadLetter(ctx, params.Event, "max event age exceeded")
	}

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		// The age window caps the whole retry sequence regardless of the
		// remaining attempt budget.
		ScheduleToCloseTimeout: params.Deadline.Sub(now),
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    params.MaxAttempts,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	err := workflow.ExecuteActivity(activityCtx, DeliverCompletionActivity, params.Event).Get(ctx, nil)
	if err == nil {
		logger.Info("Completion delivered", "eventID", params.Event.ID, "carOrderID", params.Event.Detail.CarOrderID)
		return nil
	}

	logger.Error("Delivery exhausted, dead-lettering event", "eventID", params.Event.ID, "error", err)
	return deadLetter(ctx, params.Event, "delivery exhausted: "+err.Error())
}

// deadLetter executes the DeadLetterEvent activity
func deadLetter(ctx workflow.Context, event events.OrderCompleted, reason string) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, DeadLetterEventActivity, event, reason).Get(ctx, nil)
}
