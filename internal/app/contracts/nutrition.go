package contracts

import (
	"context"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
)

type NutritionUsecase interface {
	ListMeals(ctx context.Context) map[string]float64
	CalculateMealCalories(ctx context.Context, request *requests.CalculateMealCalories) (*responses.MealCalories, error)
	CalculateDayCalories(ctx context.Context, request *requests.CalculateDayCalories) (*responses.DayCalories, error)
	CreateBMIRecord(ctx context.Context, request *requests.CreateBMIRecord) (*responses.BMIRecord, error)
}

type BMIRecordRepository interface {
	Create(ctx context.Context, record *models.BMIRecord) (string, error)
}
