package contracts

import "context"

type EventPublisher interface {
	Publish(ctx context.Context, queueName, eventType string, payload interface{}) error
}
