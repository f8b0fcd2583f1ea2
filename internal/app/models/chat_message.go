package models

import "healthtrack-service/internal/pkg/dto/responses"

type ChatMessage struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	SenderID     string `json:"senderId" bson:"senderId"`
	SenderType   string `json:"senderType" bson:"senderType"`
	ReceiverID   string `json:"receiverId" bson:"receiverId"`
	ReceiverType string `json:"receiverType" bson:"receiverType"`
	Message      string `json:"message" bson:"message"`
	// Timestamp is in Unix milliseconds.
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
	Status    string `json:"status" bson:"status"`
}

func (m *ChatMessage) ConvertIntoResponse() responses.ChatMessage {
	return responses.ChatMessage{
		ID:           m.ID,
		SenderID:     m.SenderID,
		SenderType:   m.SenderType,
		ReceiverID:   m.ReceiverID,
		ReceiverType: m.ReceiverType,
		Message:      m.Message,
		Timestamp:    m.Timestamp,
		Status:       m.Status,
	}
}
