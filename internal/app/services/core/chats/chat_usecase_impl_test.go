package chats

import (
	"context"
	"errors"
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type mockChatMessageRepository struct {
	mock.Mock
}

func (m *mockChatMessageRepository) Create(ctx context.Context, message *models.ChatMessage) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func (m *mockChatMessageRepository) FindConversation(ctx context.Context, participantA, participantB string) ([]models.ChatMessage, error) {
	args := m.Called(ctx, participantA, participantB)
	messages, _ := args.Get(0).([]models.ChatMessage)
	return messages, args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, queueName, eventType string, payload interface{}) error {
	args := m.Called(ctx, queueName, eventType, payload)
	return args.Error(0)
}

var sentAt = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestUsecase(repo *mockChatMessageRepository, publisher *mockEventPublisher) *chatUsecase {
	internalConfig := &config.InternalConfig{
		RabbitMQ: config.AppRabbitMQ{ChatRelayQueue: "chat-relay"},
	}
	uc := NewChatUsecase(repo, publisher, internalConfig, zap.NewNop()).(*chatUsecase)
	uc.now = func() time.Time { return sentAt }
	return uc
}

func sendRequest() *requests.SendChatMessage {
	return &requests.SendChatMessage{
		SenderID:     "d1",
		SenderType:   constvars.ParticipantTypeDoctor,
		ReceiverID:   "p1",
		ReceiverType: constvars.ParticipantTypePatient,
		Message:      "Please repeat the fasting test.",
	}
}

func TestSendMessage(t *testing.T) {
	t.Run("Stored And Relayed", func(t *testing.T) {
		repo := new(mockChatMessageRepository)
		publisher := new(mockEventPublisher)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(m *models.ChatMessage) bool {
			return m.Timestamp == sentAt.UnixMilli() && m.Status == constvars.ChatMessageStatusSent
		})).Return("msg-1", nil)
		publisher.On("Publish", mock.Anything, "chat-relay", constvars.EventChatMessageSent, mock.Anything).Return(nil)

		message, err := newTestUsecase(repo, publisher).SendMessage(context.Background(), sendRequest())
		require.NoError(t, err)

		assert.Equal(t, "msg-1", message.ID)
		assert.Equal(t, sentAt.UnixMilli(), message.Timestamp)
		assert.Equal(t, constvars.ChatMessageStatusSent, message.Status)
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Relay Failure Still Returns Message", func(t *testing.T) {
		repo := new(mockChatMessageRepository)
		publisher := new(mockEventPublisher)
		repo.On("Create", mock.Anything, mock.Anything).Return("msg-2", nil)
		publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("closed"))

		message, err := newTestUsecase(repo, publisher).SendMessage(context.Background(), sendRequest())
		require.NoError(t, err)
		assert.Equal(t, "msg-2", message.ID)
	})

	t.Run("Store Unavailable", func(t *testing.T) {
		repo := new(mockChatMessageRepository)
		publisher := new(mockEventPublisher)
		repo.On("Create", mock.Anything, mock.Anything).Return("", exceptions.ErrMongoDBInsertDocument(errors.New("down")))

		_, err := newTestUsecase(repo, publisher).SendMessage(context.Background(), sendRequest())
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodeStoreUnavailable))
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFindConversation(t *testing.T) {
	repo := new(mockChatMessageRepository)
	repo.On("FindConversation", mock.Anything, "d1", "p1").Return([]models.ChatMessage{
		{ID: "1", SenderID: "d1", ReceiverID: "p1", Timestamp: 1},
		{ID: "2", SenderID: "p1", ReceiverID: "d1", Timestamp: 2},
	}, nil)

	messages, err := newTestUsecase(repo, new(mockEventPublisher)).FindConversation(context.Background(), &requests.FindConversation{
		ParticipantA: "d1",
		ParticipantB: "p1",
	})
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "p1", messages[1].SenderID)
}

func TestConversationFilter(t *testing.T) {
	filter := conversationFilter("d1", "p1")

	assert.Equal(t, bson.M{
		"$or": bson.A{
			bson.M{"senderId": "d1", "receiverId": "p1"},
			bson.M{"senderId": "p1", "receiverId": "d1"},
		},
	}, filter)
}
