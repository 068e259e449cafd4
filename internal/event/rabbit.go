package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

// ExchangeName is the topic exchange carrying all lifecycle events.
const ExchangeName = "clienthub.events"

// RabbitPublisher publishes lifecycle events to a RabbitMQ topic exchange.
type RabbitPublisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

var _ Publisher = (*RabbitPublisher)(nil)

// NewRabbitPublisher dials the broker, opens a channel, and declares the
// durable topic exchange.
func NewRabbitPublisher(url string) (*RabbitPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &RabbitPublisher{conn: conn, channel: ch}, nil
}

// Publish sends the envelope as a persistent JSON message.
func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, env Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		ExchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
		},
	)
}

// Close releases the channel and connection.
func (p *RabbitPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
