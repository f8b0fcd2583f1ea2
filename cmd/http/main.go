package main

import (
	"context"
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/delivery/http/controllers"
	"healthtrack-service/internal/app/delivery/http/middlewares"
	"healthtrack-service/internal/app/delivery/http/routers"
	"healthtrack-service/internal/app/drivers/database"
	"healthtrack-service/internal/app/drivers/logger"
	"healthtrack-service/internal/app/drivers/messaging"
	"healthtrack-service/internal/app/drivers/storage"
	"healthtrack-service/internal/app/services/core/chats"
	"healthtrack-service/internal/app/services/core/labrecords"
	"healthtrack-service/internal/app/services/core/nutrition"
	"healthtrack-service/internal/app/services/shared/pdfextractor"
	"healthtrack-service/internal/app/services/shared/publisher"
	"healthtrack-service/internal/app/services/shared/ratelimiter"
	"healthtrack-service/internal/app/services/shared/redis"
	minioStorage "healthtrack-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              ":" + internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      time.Duration(internalConfig.App.RequestTimeoutInSeconds+5) * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error releasing drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig
	mongoDatabase := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	quotaLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio)
	textExtractor := pdfextractor.NewPDFExtractor(bootstrap.Logger)
	channel := messaging.NewRabbitMQChannel(
		bootstrap.RabbitMQ,
		internalConfig.RabbitMQ.LabRecordEventsQueue,
		internalConfig.RabbitMQ.ChatRelayQueue,
	)
	eventPublisher := publisher.NewRabbitMQPublisher(channel, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig)

	// Lab records
	labRecordRepository := labrecords.NewLabRecordMongoRepository(mongoDatabase)
	labRecordUsecase := labrecords.NewLabRecordUsecase(
		labRecordRepository,
		textExtractor,
		objectStorage,
		quotaLimiter,
		eventPublisher,
		internalConfig,
		bootstrap.Logger,
	)
	labRecordController := controllers.NewLabRecordController(bootstrap.Logger, labRecordUsecase, internalConfig)

	// Nutrition
	calorieTable, err := nutrition.LoadCalorieTable(internalConfig.Nutrition.CalorieDataPath)
	if err != nil {
		bootstrap.Logger.Fatal("Error loading calorie data", zap.Error(err))
	}
	bmiRecordRepository := nutrition.NewBMIRecordMongoRepository(mongoDatabase)
	nutritionUsecase := nutrition.NewNutritionUsecase(calorieTable, bmiRecordRepository, bootstrap.Logger)
	nutritionController := controllers.NewNutritionController(bootstrap.Logger, nutritionUsecase, internalConfig)

	// Chats
	chatMessageRepository := chats.NewChatMessageMongoRepository(mongoDatabase)
	chatUsecase := chats.NewChatUsecase(chatMessageRepository, eventPublisher, internalConfig, bootstrap.Logger)
	chatController := controllers.NewChatController(bootstrap.Logger, chatUsecase, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		labRecordController,
		nutritionController,
		chatController,
	)
}
