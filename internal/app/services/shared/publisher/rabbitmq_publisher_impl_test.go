package publisher

import (
	"context"
	"errors"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestPublish(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("Persistent JSON Envelope", func(t *testing.T) {
		channel := new(mockChannel)
		var published amqp091.Publishing
		channel.On("PublishWithContext", ctx, "", "lab_record_events", false, false, mock.AnythingOfType("amqp091.Publishing")).
			Run(func(args mock.Arguments) {
				published = args.Get(5).(amqp091.Publishing)
			}).
			Return(nil).Once()

		publisher := &rabbitMQPublisher{Channel: channel, Log: zap.NewNop()}
		err := publisher.Publish(ctx, "lab_record_events", constvars.EventLabRecordCreated, map[string]string{"id": "abc"})
		require.NoError(t, err)

		assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
		assert.Equal(t, constvars.MIMEApplicationJSON, published.ContentType)
		assert.Equal(t, "req-1", published.MessageId)

		var event models.Event
		require.NoError(t, json.Unmarshal(published.Body, &event))
		assert.Equal(t, constvars.EventLabRecordCreated, event.Type)
		assert.Equal(t, "req-1", event.RequestID)
		assert.Equal(t, map[string]interface{}{"id": "abc"}, event.Payload)
		channel.AssertExpectations(t)
	})

	t.Run("Broker Failure", func(t *testing.T) {
		channel := new(mockChannel)
		channel.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("channel closed")).Once()

		publisher := &rabbitMQPublisher{Channel: channel, Log: zap.NewNop()}
		err := publisher.Publish(ctx, "chat_relay", constvars.EventChatMessageSent, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "channel closed")
	})
}
