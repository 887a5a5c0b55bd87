// Package messaging publishes storefront domain events to a broker.
package messaging

import (
	"context"
	"time"

	"github.com/lamontana/storefront/internal/core"
)

// Publisher sends a JSON-encoded event. For Kafka topic is the topic name;
// for RabbitMQ it is the routing key on the configured exchange.
type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
	Close() error
}

const EventOrderPlaced = "order.placed"

type OrderPlacedEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	Number       string    `json:"number"`
	UserID       string    `json:"user_id"`
	Items        int       `json:"items"`
	Total        int       `json:"total"`
	HasPrintJob  bool      `json:"has_print_job"`
	PostalCode   string    `json:"postal_code"`
	FreeShipping bool      `json:"free_shipping"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func NewOrderPlacedEvent(o core.Order) OrderPlacedEvent {
	items := 0
	for _, l := range o.Lines {
		items += l.Quantity
	}
	return OrderPlacedEvent{
		Type:         EventOrderPlaced,
		OrderID:      o.ID,
		Number:       o.Number,
		UserID:       o.UserID,
		Items:        items,
		Total:        o.Total,
		HasPrintJob:  o.PrintJob != nil,
		PostalCode:   o.Shipping.PostalCode,
		FreeShipping: o.Shipping.Outcome == core.ShippingEligible,
		OccurredAt:   o.CreatedAt,
	}
}

// OrderEvents adapts a Publisher to core.OrderEvents.
type OrderEvents struct {
	pub   Publisher
	topic string
}

func NewOrderEvents(pub Publisher, topic string) *OrderEvents {
	return &OrderEvents{pub: pub, topic: topic}
}

// OrderPlaced keys the message by order number so a partition keeps one
// order's events in sequence.
func (e *OrderEvents) OrderPlaced(ctx context.Context, o core.Order) error {
	return e.pub.PublishEvent(ctx, e.topic, o.Number, NewOrderPlacedEvent(o))
}

// Nop drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) PublishEvent(context.Context, string, string, any) error { return nil }
func (Nop) Close() error                                             { return nil }
