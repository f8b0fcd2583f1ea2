package contracts

import (
	"context"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
)

type ChatUsecase interface {
	SendMessage(ctx context.Context, request *requests.SendChatMessage) (*responses.ChatMessage, error)
	FindConversation(ctx context.Context, request *requests.FindConversation) ([]responses.ChatMessage, error)
}

type ChatMessageRepository interface {
	Create(ctx context.Context, message *models.ChatMessage) (string, error)
	FindConversation(ctx context.Context, participantA, participantB string) ([]models.ChatMessage, error)
}
