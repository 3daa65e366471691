// Package kafka publishes outbox events to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/ports"

	otelkafka "github.com/Trendyol/otel-kafka-konsumer"
	kafkago "github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	HeaderEventID   = "event_id"
	HeaderEventName = "event_type"
)

// MessageWriter is the subset of the traced writer the publisher needs.
type MessageWriter interface {
	WriteMessage(ctx context.Context, msg kafkago.Message) error
	Close() error
}

// NewWriter builds a traced writer. Messages are hashed by key, so all events
// of one aggregate land on the same partition and keep their order.
func NewWriter(brokers []string, topic, clientID string, tp trace.TracerProvider) (*otelkafka.Writer, error) {
	base := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}

	return otelkafka.NewWriter(base,
		otelkafka.WithTracerProvider(tp),
		otelkafka.WithPropagator(propagation.TraceContext{}),
		otelkafka.WithAttributes([]attribute.KeyValue{
			attribute.String("messaging.destination.name", topic),
			attribute.String("messaging.kafka.client_id", clientID),
		}),
	)
}

// Publisher implements ports.EventPublisher on top of a MessageWriter.
type Publisher struct {
	writer MessageWriter
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish writes one message synchronously and returns once the brokers acknowledged it.
func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	err := p.writer.WriteMessage(ctx, kafkago.Message{
		Key:   []byte(msg.AggregateID),
		Value: msg.Payload,
		Time:  msg.OccurredAt,
		Headers: []kafkago.Header{
			{Key: HeaderEventID, Value: []byte(msg.ID.String())},
			{Key: HeaderEventName, Value: []byte(msg.Name)},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka publish %s: %w", msg.Name, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
