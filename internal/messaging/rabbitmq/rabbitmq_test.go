package rabbitmq

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
)

func TestNewPublishing(t *testing.T) {
	p := newPublishing("ORD-2026-000007", []byte(`{}`))
	if p.ContentType != "application/json" {
		t.Errorf("content type = %q", p.ContentType)
	}
	if p.DeliveryMode != amqp.Persistent {
		t.Errorf("delivery mode = %d, want persistent", p.DeliveryMode)
	}
	if p.MessageId != "ORD-2026-000007" {
		t.Errorf("message id = %q", p.MessageId)
	}
}
