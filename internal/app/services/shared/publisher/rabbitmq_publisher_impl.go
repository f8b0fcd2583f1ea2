package publisher

import (
	"context"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel is the subset of *amqp091.Channel used for publishing.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQPublisher struct {
	Channel amqpChannel
	Log     *zap.Logger
}

func NewRabbitMQPublisher(channel *amqp091.Channel, logger *zap.Logger) contracts.EventPublisher {
	return &rabbitMQPublisher{
		Channel: channel,
		Log:     logger,
	}
}

// Publish wraps payload in an event envelope and sends it persistently to queueName on the default exchange.
func (p *rabbitMQPublisher) Publish(ctx context.Context, queueName, eventType string, payload interface{}) error {
	requestID := utils.GetRequestID(ctx)

	body, err := json.Marshal(models.Event{
		Type:       eventType,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.Channel.PublishWithContext(ctx, "", queueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Type:         eventType,
		MessageId:    requestID,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	p.Log.Debug("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, queueName),
		zap.String(constvars.LoggingEventTypeKey, eventType),
	)
	return nil
}
