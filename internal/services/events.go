package services

// EventPublisher publishes domain events to the message broker. The
// RabbitMQ client satisfies this; tests pass a mock or nil.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}
