package routers

import (
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/delivery/http/controllers"
	"healthtrack-service/internal/app/delivery/http/middlewares"
	"healthtrack-service/internal/pkg/constvars"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	labRecordController *controllers.LabRecordController,
	nutritionController *controllers.NutritionController,
	chatController *controllers.ChatController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   strings.Split(internalConfig.App.AllowedOrigins, ","),
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.GlobalRateLimiter())
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	endpointPrefix := "/" + strings.Trim(internalConfig.App.EndpointPrefix, "/")
	versionPrefix := "/" + strings.Trim(internalConfig.App.Version, "/")

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			attachRoutes(r, internalConfig, middlewares, labRecordController, nutritionController, chatController)
		})
	})
}

func attachRoutes(
	router chi.Router,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	labRecordController *controllers.LabRecordController,
	nutritionController *controllers.NutritionController,
	chatController *controllers.ChatController,
) {
	router.Route("/"+constvars.ResourceRecords, func(r chi.Router) {
		attachLabRecordRoutes(r, internalConfig, middlewares, labRecordController)
	})

	router.Route("/"+constvars.ResourcePatients, func(r chi.Router) {
		attachPatientRecordRoutes(r, labRecordController)
	})

	router.Route("/"+constvars.ResourceDoctors, func(r chi.Router) {
		attachDoctorRecordRoutes(r, labRecordController)
	})

	router.Route("/"+constvars.ResourceNutrition, func(r chi.Router) {
		attachNutritionRoutes(r, middlewares, nutritionController)
	})

	router.Route("/"+constvars.ResourceChats, func(r chi.Router) {
		attachChatRoutes(r, middlewares, chatController)
	})
}
