package workflow

import (
	"context"
	"encoding/json"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/events"
	"encore.app/orderrelay/store/deadletters"
	"encore.app/orderrelay/target"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	Target      target.Client
	DeadLetters deadletters.Querier
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(targetClient target.Client, deadLetterRepo deadletters.Querier) {
	if targetClient == nil && deadLetterRepo == nil {
		activityDeps = nil
		return
	}
	activityDeps = &ActivityDependencies{
		Target:      targetClient,
		DeadLetters: deadLetterRepo,
	}
}

// DeliverCompletionActivity makes one delivery attempt against the buyer's
// webhook. Retries are owned entirely by the workflow's retry policy.
func DeliverCompletionActivity(ctx context.Context, event events.OrderCompleted) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Delivering completion event", "eventID", event.ID, "carOrderID", event.Detail.CarOrderID)

	if activityDeps == nil || activityDeps.Target == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	if err := activityDeps.Target.DeliverCompletion(ctx, event.Detail); err != nil {
		logger.Error("Failed to deliver completion event", "eventID", event.ID, "error", err)
		return err
	}

	logger.Info("Successfully delivered completion event", "eventID", event.ID)
	return nil
}

// DeadLetterEventActivity captures the full original event, untransformed,
// for manual inspection or replay.
func DeadLetterEventActivity(ctx context.Context, event events.OrderCompleted, reason string) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Dead-lettering completion event", "eventID", event.ID, "reason", reason)

	if activityDeps == nil || activityDeps.DeadLetters == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return temporal.NewNonRetryableApplicationError("failed to marshal event payload", "PayloadError", err)
	}

	err = activityDeps.DeadLetters.CreateDeadLetter(ctx, deadletters.CreateDeadLetterParams{
		EventID:     event.ID,
		Source:      event.Source,
		DetailType:  event.DetailType,
		Payload:     payload,
		PublishedAt: event.PublishedAt,
		Reason:      reason,
	})
	if err != nil {
		logger.Error("Failed to store dead letter", "eventID", event.ID, "error", err)
		return err
	}

	logger.Info("Successfully dead-lettered event", "eventID", event.ID)
	return nil
}
