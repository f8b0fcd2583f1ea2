package routers

import (
	"healthtrack-service/internal/app/delivery/http/controllers"
	"healthtrack-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNutritionRoutes(router chi.Router, middlewares *middlewares.Middlewares, nutritionController *controllers.NutritionController) {
	router.Get("/meals", nutritionController.ListMeals)
	router.With(middlewares.BodyLimit).Post("/meals/calories", nutritionController.CalculateMealCalories)
	router.With(middlewares.BodyLimit).Post("/days/calories", nutritionController.CalculateDayCalories)
	router.With(middlewares.BodyLimit).Post("/bmi", nutritionController.CreateBMIRecord)
}
