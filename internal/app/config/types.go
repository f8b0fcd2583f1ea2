package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type InternalConfig struct {
	App       App
	Minio     AppMinio
	RabbitMQ  AppRabbitMQ
	Upload    AppUpload
	Nutrition AppNutrition
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	AllowedOrigins             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
}

type AppMinio struct {
	BucketName                          string
	ReportFileMaxUploadSizeInMB         int64
	PreSignedUrlObjectExpiryTimeInHours int
}

type AppRabbitMQ struct {
	LabRecordEventsQueue string
	ChatRelayQueue       string
}

// AppUpload bounds how often lab report documents may be uploaded.
type AppUpload struct {
	DailyQuotaPerPatient      int
	RateLimitPerMinute        int
	RateLimitBurst            int
	RateLimitBlockTimeSeconds int
}

type AppNutrition struct {
	CalorieDataPath string
}
