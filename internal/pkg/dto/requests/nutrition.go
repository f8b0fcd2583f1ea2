package requests

type MealPortion struct {
	Meal     string  `json:"meal" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
}

type CalculateMealCalories struct {
	Meals []MealPortion `json:"meals" validate:"required,dive"`
}

// CalculateDayCalories groups portions by meal time, e.g. "breakfast".
type CalculateDayCalories struct {
	DayMeals map[string][]MealPortion `json:"dayMeals" validate:"required,dive,dive"`
}

// CreateBMIRecord takes height in centimetres and weight in kilograms.
type CreateBMIRecord struct {
	UserID string  `json:"userId" validate:"required"`
	Height float64 `json:"height" validate:"required,gt=0,lte=300"`
	Weight float64 `json:"weight" validate:"required,gt=0,lte=700"`
}
