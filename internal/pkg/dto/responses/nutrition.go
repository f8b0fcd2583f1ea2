package responses

import "time"

type MealCalories struct {
	TotalCalories float64 `json:"totalCalories"`
}

type DayCalories struct {
	DailyCalories float64            `json:"dailyCalories"`
	PerMealTime   map[string]float64 `json:"perMealTime"`
}

type BMIRecord struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Height   float64   `json:"height"`
	Weight   float64   `json:"weight"`
	BMI      float64   `json:"bmi"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}
