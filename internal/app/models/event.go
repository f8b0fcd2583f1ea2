package models

import "time"

// Event is the envelope published to RabbitMQ queues.
type Event struct {
	Type       string      `json:"type"`
	RequestID  string      `json:"requestId,omitempty"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}
