package utils

import (
	"healthtrack-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreateManualLabRecordRequest(input *requests.CreateManualLabRecord) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
}

func SanitizeAttachDoctorCommentRequest(input *requests.AttachDoctorComment) {
	input.DoctorComment = strings.TrimSpace(input.DoctorComment)
}

func SanitizeSendChatMessageRequest(input *requests.SendChatMessage) {
	input.SenderID = strings.TrimSpace(input.SenderID)
	input.ReceiverID = strings.TrimSpace(input.ReceiverID)
	input.SenderType = strings.ToLower(strings.TrimSpace(input.SenderType))
	input.ReceiverType = strings.ToLower(strings.TrimSpace(input.ReceiverType))
	input.Message = strings.TrimSpace(input.Message)
}

func SanitizeMealPortions(portions []requests.MealPortion) {
	for i := range portions {
		portions[i].Meal = strings.TrimSpace(portions[i].Meal)
	}
}
