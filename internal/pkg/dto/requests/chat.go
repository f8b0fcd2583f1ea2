package requests

type SendChatMessage struct {
	SenderID     string `json:"senderId" validate:"required"`
	SenderType   string `json:"senderType" validate:"required,participant"`
	ReceiverID   string `json:"receiverId" validate:"required,nefield=SenderID"`
	ReceiverType string `json:"receiverType" validate:"required,participant"`
	Message      string `json:"message" validate:"required,max=4000"`
}

type FindConversation struct {
	ParticipantA string `validate:"required"`
	ParticipantB string `validate:"required"`
}
