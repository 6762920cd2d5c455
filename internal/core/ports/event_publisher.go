package ports

import "context"

// EventPublisher publishes domain events to the message broker after a
// command commits. Publishing is best effort: a broker failure is logged by
// the caller, never rolled into the command result.
type EventPublisher interface {
	// Publish sends a JSON-serializable payload under a routing pattern,
	// e.g. "order.created".
	Publish(ctx context.Context, pattern string, payload any) error

	// Close releases the broker channel and connection.
	Close() error
}
