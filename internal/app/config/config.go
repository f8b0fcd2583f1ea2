package config

import (
	"healthtrack-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "healthtrack"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			AllowedOrigins:             utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 30),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		Minio: AppMinio{
			BucketName:                          utils.GetEnvString("APP_MINIO_REPORT_BUCKET_NAME", "lab-reports"),
			ReportFileMaxUploadSizeInMB:         utils.GetEnvInt64("APP_MINIO_REPORT_FILE_UPLOAD_MAX_SIZE_IN_MB", 5),
			PreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 1),
		},
		RabbitMQ: AppRabbitMQ{
			LabRecordEventsQueue: utils.GetEnvString("APP_RABBITMQ_LAB_RECORD_EVENTS_QUEUE", "lab_record_events"),
			ChatRelayQueue:       utils.GetEnvString("APP_RABBITMQ_CHAT_RELAY_QUEUE", "chat_relay"),
		},
		Upload: AppUpload{
			DailyQuotaPerPatient:      utils.GetEnvInt("APP_UPLOAD_DAILY_QUOTA_PER_PATIENT", 20),
			RateLimitPerMinute:        utils.GetEnvInt("APP_UPLOAD_RATE_LIMIT_PER_MINUTE", 6),
			RateLimitBurst:            utils.GetEnvInt("APP_UPLOAD_RATE_LIMIT_BURST", 3),
			RateLimitBlockTimeSeconds: utils.GetEnvInt("APP_UPLOAD_RATE_LIMIT_BLOCK_TIME_IN_SECONDS", 60),
		},
		Nutrition: AppNutrition{
			CalorieDataPath: utils.GetEnvString("APP_NUTRITION_CALORIE_DATA_PATH", "calories.json"),
		},
	}
}
