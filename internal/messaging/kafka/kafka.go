package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
)

type Broker struct {
	w *kafkaGo.Writer
}

// NewBroker keeps one writer for all topics; each message names its topic.
func NewBroker(brokers []string) *Broker {
	return &Broker{w: &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(brokers...),
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}}
}

func (b *Broker) PublishEvent(ctx context.Context, topic, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := b.w.WriteMessages(ctx, newMessage(topic, key, payload)); err != nil {
		return fmt.Errorf("kafka write %s: %w", topic, err)
	}
	return nil
}

func (b *Broker) Close() error {
	return b.w.Close()
}

func newMessage(topic, key string, payload []byte) kafkaGo.Message {
	return kafkaGo.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Headers: []kafkaGo.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	}
}
