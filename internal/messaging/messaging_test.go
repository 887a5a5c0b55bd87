package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lamontana/storefront/internal/core"
)

type recordingPublisher struct {
	topic, key string
	event      any
	err        error
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.topic, p.key, p.event = topic, key, event
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func sampleOrder() core.Order {
	return core.Order{
		ID:     "o-1",
		Number: "ORD-2026-000003",
		UserID: "u-1",
		Lines: []core.CartLine{
			{Product: core.Product{Name: "Copia B/N", Price: 40}, Quantity: 3},
			{Product: core.Product{Name: "Anillado", Price: 900}, Quantity: 1},
		},
		Total:     1020,
		PrintJob:  &core.PrintQuote{Total: 0},
		Shipping:  core.ShippingDetails{PostalCode: "1425", Outcome: core.ShippingEligible},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestOrderPlacedPublishesEvent(t *testing.T) {
	pub := &recordingPublisher{}
	events := NewOrderEvents(pub, "orders")

	if err := events.OrderPlaced(context.Background(), sampleOrder()); err != nil {
		t.Fatalf("OrderPlaced: %v", err)
	}
	if pub.topic != "orders" || pub.key != "ORD-2026-000003" {
		t.Errorf("topic/key = %q/%q", pub.topic, pub.key)
	}
	ev, ok := pub.event.(OrderPlacedEvent)
	if !ok {
		t.Fatalf("event type = %T", pub.event)
	}
	if ev.Type != EventOrderPlaced || ev.Items != 4 || !ev.FreeShipping || !ev.HasPrintJob {
		t.Errorf("event = %+v", ev)
	}
}

func TestOrderPlacedPropagatesError(t *testing.T) {
	boom := errors.New("broker down")
	events := NewOrderEvents(&recordingPublisher{err: boom}, "orders")
	if err := events.OrderPlaced(context.Background(), sampleOrder()); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = Nop{}
	if err := p.PublishEvent(context.Background(), "t", "k", nil); err != nil {
		t.Errorf("Nop.PublishEvent: %v", err)
	}
}
