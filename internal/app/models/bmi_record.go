package models

import (
	"healthtrack-service/internal/pkg/dto/responses"
	"time"
)

type BMIRecord struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"userId" bson:"userId"`
	Height    float64   `json:"height" bson:"height"`
	Weight    float64   `json:"weight" bson:"weight"`
	BMI       float64   `json:"bmi" bson:"bmi"`
	Category  string    `json:"category" bson:"category"`
	Date      time.Time `json:"date" bson:"date"`
	TimeModel `bson:",inline"`
}

func (b *BMIRecord) ConvertIntoResponse() responses.BMIRecord {
	return responses.BMIRecord{
		ID:       b.ID,
		UserID:   b.UserID,
		Height:   b.Height,
		Weight:   b.Weight,
		BMI:      b.BMI,
		Category: b.Category,
		Date:     b.Date,
	}
}
