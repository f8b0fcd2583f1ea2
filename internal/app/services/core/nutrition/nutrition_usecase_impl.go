package nutrition

import (
	"context"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
	"math"
	"time"

	"go.uber.org/zap"
)

const (
	BMICategoryUnderweight = "underweight"
	BMICategoryNormal      = "normal"
	BMICategoryOverweight  = "overweight"
	BMICategoryObese       = "obese"
)

type nutritionUsecase struct {
	CalorieTable        *CalorieTable
	BMIRecordRepository contracts.BMIRecordRepository
	Log                 *zap.Logger
	now                 func() time.Time
}

func NewNutritionUsecase(
	calorieTable *CalorieTable,
	bmiRecordRepository contracts.BMIRecordRepository,
	logger *zap.Logger,
) contracts.NutritionUsecase {
	return &nutritionUsecase{
		CalorieTable:        calorieTable,
		BMIRecordRepository: bmiRecordRepository,
		Log:                 logger,
		now:                 time.Now,
	}
}

func (uc *nutritionUsecase) ListMeals(ctx context.Context) map[string]float64 {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nutritionUsecase.ListMeals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMealCountKey, uc.CalorieTable.Len()),
	)
	return uc.CalorieTable.Meals()
}

func (uc *nutritionUsecase) CalculateMealCalories(ctx context.Context, request *requests.CalculateMealCalories) (*responses.MealCalories, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nutritionUsecase.CalculateMealCalories called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMealCountKey, len(request.Meals)),
	)

	return &responses.MealCalories{
		TotalCalories: uc.sumCalories(request.Meals),
	}, nil
}

func (uc *nutritionUsecase) CalculateDayCalories(ctx context.Context, request *requests.CalculateDayCalories) (*responses.DayCalories, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nutritionUsecase.CalculateDayCalories called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMealCountKey, len(request.DayMeals)),
	)

	response := &responses.DayCalories{
		PerMealTime: make(map[string]float64, len(request.DayMeals)),
	}
	for mealTime, portions := range request.DayMeals {
		calories := uc.sumCalories(portions)
		response.PerMealTime[mealTime] = calories
		response.DailyCalories += calories
	}
	return response, nil
}

// sumCalories ignores meals missing from the table.
func (uc *nutritionUsecase) sumCalories(portions []requests.MealPortion) float64 {
	var total float64
	for _, portion := range portions {
		caloriesPer100, ok := uc.CalorieTable.Lookup(portion.Meal)
		if !ok {
			continue
		}
		total += caloriesPer100 / 100 * portion.Quantity
	}
	return total
}

func (uc *nutritionUsecase) CreateBMIRecord(ctx context.Context, request *requests.CreateBMIRecord) (*responses.BMIRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("nutritionUsecase.CreateBMIRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bmi := CalculateBMI(request.Height, request.Weight)
	record := &models.BMIRecord{
		UserID:   request.UserID,
		Height:   request.Height,
		Weight:   request.Weight,
		BMI:      bmi,
		Category: BMICategory(bmi),
		Date:     uc.now().UTC(),
	}
	record.SetCreatedAtUpdatedAt()

	recordID, err := uc.BMIRecordRepository.Create(ctx, record)
	if err != nil {
		uc.Log.Error("nutritionUsecase.CreateBMIRecord error creating record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	record.ID = recordID

	response := record.ConvertIntoResponse()
	uc.Log.Info("nutritionUsecase.CreateBMIRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return &response, nil
}

// CalculateBMI takes height in centimetres and weight in kilograms and
// rounds to one decimal place.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMICategoryUnderweight
	case bmi < 25:
		return BMICategoryNormal
	case bmi < 30:
		return BMICategoryOverweight
	default:
		return BMICategoryObese
	}
}
