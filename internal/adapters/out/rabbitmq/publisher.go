// Package rabbitmq publishes domain events to a RabbitMQ topic exchange.
// Events are emitted after a command commits; delivery is best effort and
// consumers must tolerate duplicates.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"
)

// Publisher implements ports.EventPublisher over one connection and channel.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// envelope is the wire format: the routing pattern repeated in the body so
// consumers can dispatch without inspecting AMQP metadata.
type envelope struct {
	Pattern string `json:"pattern"`
	Data    any    `json:"data"`
}

// NewPublisher connects to the broker and declares a durable topic exchange.
func NewPublisher(amqpURL, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_publisher"),
	}, nil
}

// Publish sends a JSON payload under a routing pattern, e.g. "order.created".
func (p *Publisher) Publish(_ context.Context, pattern string, payload any) error {
	body, err := json.Marshal(envelope{Pattern: pattern, Data: payload})
	if err != nil {
		return fmt.Errorf("marshal event %q: %w", pattern, err)
	}

	err = p.channel.Publish(p.exchange, pattern, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("publish event %q: %w", pattern, err)
	}

	p.logger.Debug("event published", "pattern", pattern, "exchange", p.exchange)
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
