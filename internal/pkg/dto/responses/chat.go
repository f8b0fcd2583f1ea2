package responses

type ChatMessage struct {
	ID           string `json:"id"`
	SenderID     string `json:"senderId"`
	SenderType   string `json:"senderType"`
	ReceiverID   string `json:"receiverId"`
	ReceiverType string `json:"receiverType"`
	Message      string `json:"message"`
	Timestamp    int64  `json:"timestamp"`
	Status       string `json:"status"`
}
