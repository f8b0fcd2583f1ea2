package chats

import (
	"context"
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
	"time"

	"go.uber.org/zap"
)

type chatUsecase struct {
	ChatMessageRepository contracts.ChatMessageRepository
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewChatUsecase(
	chatMessageRepository contracts.ChatMessageRepository,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ChatUsecase {
	return &chatUsecase{
		ChatMessageRepository: chatMessageRepository,
		EventPublisher:        eventPublisher,
		InternalConfig:        internalConfig,
		Log:                   logger,
		now:                   time.Now,
	}
}

// SendMessage stores the message and hands it to the relay queue for live delivery.
func (uc *chatUsecase) SendMessage(ctx context.Context, request *requests.SendChatMessage) (*responses.ChatMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.SendMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingParticipantsKey, []string{request.SenderID, request.ReceiverID}),
	)

	message := &models.ChatMessage{
		SenderID:     request.SenderID,
		SenderType:   request.SenderType,
		ReceiverID:   request.ReceiverID,
		ReceiverType: request.ReceiverType,
		Message:      request.Message,
		Timestamp:    uc.now().UnixMilli(),
		Status:       constvars.ChatMessageStatusSent,
	}

	messageID, err := uc.ChatMessageRepository.Create(ctx, message)
	if err != nil {
		uc.Log.Error("chatUsecase.SendMessage error creating message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	message.ID = messageID

	response := message.ConvertIntoResponse()
	if uc.EventPublisher != nil {
		queueName := uc.InternalConfig.RabbitMQ.ChatRelayQueue
		err = uc.EventPublisher.Publish(ctx, queueName, constvars.EventChatMessageSent, response)
		if err != nil {
			uc.Log.Warn("chatUsecase.SendMessage error relaying message",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingQueueNameKey, queueName),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("chatUsecase.SendMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, messageID),
	)
	return &response, nil
}

func (uc *chatUsecase) FindConversation(ctx context.Context, request *requests.FindConversation) ([]responses.ChatMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.FindConversation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingParticipantsKey, []string{request.ParticipantA, request.ParticipantB}),
	)

	messages, err := uc.ChatMessageRepository.FindConversation(ctx, request.ParticipantA, request.ParticipantB)
	if err != nil {
		uc.Log.Error("chatUsecase.FindConversation error fetching messages",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.ChatMessage, len(messages))
	for i, eachMessage := range messages {
		response[i] = eachMessage.ConvertIntoResponse()
	}

	uc.Log.Info("chatUsecase.FindConversation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}
