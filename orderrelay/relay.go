package orderrelay

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/pubsub"
	"encore.dev/rlog"

	"encore.app/events"
	"encore.app/orderrelay/workflow"
)

var _ = pubsub.NewSubscription(events.Completions, "deliver-order-completion", pubsub.SubscriptionConfig[*events.OrderCompleted]{
	Handler: pubsub.MethodHandler((*Service).HandleOrderCompleted),
	RetryPolicy: &pubsub.RetryPolicy{
		MaxRetries: 5,
	},
})

// HandleOrderCompleted receives bus events at least once and hands
// matching ones to the delivery workflow. Non-matching events are ignored
// outright.
func (s *Service) HandleOrderCompleted(ctx context.Context, event *events.OrderCompleted) error {
	if event.Source != events.OrderCompletedSource || event.DetailType != events.OrderCompletedType {
		return nil
	}

	if err := s.startDeliveryWorkflow(ctx, event); err != nil {
		rlog.Error("failed to start delivery workflow", "error", err, "event_id", event.ID)
		return err
	}
	return nil
}

// startDeliveryWorkflow starts one delivery pipeline per event. The
// workflow ID is derived from the event ID, so a redelivered message finds
// its pipeline already running and is dropped as a benign duplicate.
func (s *Service) startDeliveryWorkflow(ctx context.Context, event *events.OrderCompleted) error {
	workflowID := fmt.Sprintf("relay-%s", event.ID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.DeliverCompletionParams{
		Event:       *event,
		Deadline:    event.PublishedAt.Add(time.Duration(cfg.MaxEventAgeMinutes) * time.Minute),
		MaxAttempts: int32(cfg.RetryAttempts),
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.DeliverCompletion, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("delivery already in flight", "event_id", event.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
