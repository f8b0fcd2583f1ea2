package utils

import (
	"healthtrack-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSendChatMessageRequest(t *testing.T) {
	t.Run("Participant Types Lowercased And Trimmed", func(t *testing.T) {
		request := &requests.SendChatMessage{
			SenderID:     "  doc-1 ",
			SenderType:   "  Doctor ",
			ReceiverID:   " pat-1",
			ReceiverType: "PATIENT  ",
			Message:      "  Please repeat the fasting test.  ",
		}

		SanitizeSendChatMessageRequest(request)

		assert.Equal(t, "doc-1", request.SenderID, "sender id should be trimmed")
		assert.Equal(t, "doctor", request.SenderType, "sender type should be lowercase and trimmed")
		assert.Equal(t, "pat-1", request.ReceiverID, "receiver id should be trimmed")
		assert.Equal(t, "patient", request.ReceiverType, "receiver type should be lowercase and trimmed")
		assert.Equal(t, "Please repeat the fasting test.", request.Message, "message should be trimmed")
	})

	t.Run("Whitespace Only Message Becomes Empty", func(t *testing.T) {
		request := &requests.SendChatMessage{Message: "   "}

		SanitizeSendChatMessageRequest(request)

		assert.Empty(t, request.Message, "blank message should be emptied so validation rejects it")
	})
}

func TestSanitizeCreateManualLabRecordRequest(t *testing.T) {
	request := &requests.CreateManualLabRecord{
		PatientID: " patient-42 ",
		DoctorID:  "\tdoctor-7\n",
		Date:      " 2024-05-01 ",
	}

	SanitizeCreateManualLabRecordRequest(request)

	assert.Equal(t, "patient-42", request.PatientID)
	assert.Equal(t, "doctor-7", request.DoctorID)
	assert.Equal(t, "2024-05-01", request.Date)
}

func TestSanitizeMealPortions(t *testing.T) {
	portions := []requests.MealPortion{
		{Meal: "  Breakfast > Oats ", Quantity: 50},
		{Meal: "Fruit > Apple", Quantity: 150},
	}

	SanitizeMealPortions(portions)

	assert.Equal(t, "Breakfast > Oats", portions[0].Meal)
	assert.Equal(t, "Fruit > Apple", portions[1].Meal)
	assert.Equal(t, float64(50), portions[0].Quantity, "quantity should be untouched")
}
