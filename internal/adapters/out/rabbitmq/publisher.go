// Package rabbitmq publishes outbox events to a topic exchange. The routing
// key is the event name, so consumers bind on patterns such as "inventory.*".
package rabbitmq

import (
	"context"
	"fmt"

	"ordering/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultExchange = "catalog.events"

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	channel  Channel
	exchange string
}

// NewPublisher declares the durable topic exchange and returns a publisher bound to it.
func NewPublisher(channel Channel, exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if err := channel.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{channel: channel, exchange: exchange}, nil
}

// Dial opens a connection and a channel for NewPublisher.
func Dial(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}

func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	err := p.channel.PublishWithContext(ctx, p.exchange, msg.Name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID.String(),
		Type:         msg.Name,
		Timestamp:    msg.OccurredAt,
		Headers:      amqp.Table{"aggregate_id": msg.AggregateID},
		Body:         msg.Payload,
	})
	if err != nil {
		return fmt.Errorf("amqp publish %s: %w", msg.Name, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.channel.Close()
}
