// Package events declares the completion event bus shared by the tire
// company (producer) and the order relay (consumer). The wire shapes are
// deliberately self-contained so consumers do not depend on the
// supplier's internal models.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.dev/pubsub"
)

const (
	// OrderCompletedSource identifies the sweep as the event origin.
	OrderCompletedSource = "complete-order"
	// OrderCompletedType is the detail type for completion events.
	OrderCompletedType = "OrderCompleted"
)

// StockOrder is the snapshot carried as the event detail. Field names
// match the supplier's API contract; carOrderId is the only correlation
// key between the two domains.
type StockOrder struct {
	ID          string `json:"id"`
	CarOrderID  string `json:"carOrderId"`
	CarType     string `json:"carType"`
	OrderStatus string `json:"orderStatus"`
}

// OrderCompleted is emitted once per completed stock order. Delivery is
// at-least-once; consumers must tolerate duplicates.
type OrderCompleted struct {
	ID          string     `json:"id"`
	Source      string     `json:"source"`
	DetailType  string     `json:"detail_type"`
	Detail      StockOrder `json:"detail"`
	PublishedAt time.Time  `json:"published_at"`
}

// Completions is the named bus the relay subscribes to.
var Completions = pubsub.NewTopic[*OrderCompleted]("order-completions", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

// TopicPublisher publishes completion events onto the bus.
type TopicPublisher struct{}

func NewTopicPublisher() TopicPublisher {
	return TopicPublisher{}
}

func (TopicPublisher) PublishOrderCompleted(ctx context.Context, detail StockOrder) (string, error) {
	return Completions.Publish(ctx, &OrderCompleted{
		ID:          uuid.NewString(),
		Source:      OrderCompletedSource,
		DetailType:  OrderCompletedType,
		Detail:      detail,
		PublishedAt: time.Now(),
	})
}
