package config

import (
	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "serenemind"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "career-documents"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Africa/Nairobi"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:          utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RabbitMQMailerQueue:      utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer"),
			MailerEmailSender:        utils.GetEnvString("APP_MAILER_EMAIL_SENDER", ""),
			CareersNotifyEmail:       utils.GetEnvString("APP_CAREERS_NOTIFY_EMAIL", ""),
			CareersMaxUploadSizeInMB: utils.GetEnvInt("APP_CAREERS_UPLOAD_MAX_SIZE_IN_MB", 6),
		},
		EmailJS: EmailJS{
			BaseURL:    utils.GetEnvString("EMAILJS_BASE_URL", constvars.EmailDispatchDefaultBaseURL),
			ServiceID:  utils.GetEnvString("EMAILJS_SERVICE_ID", ""),
			TemplateID: utils.GetEnvString("EMAILJS_TEMPLATE_ID", ""),
			PublicKey:  utils.GetEnvString("EMAILJS_PUBLIC_KEY", ""),
		},
		Assessment: Assessment{
			WizardSessionTTLInMinutes: utils.GetEnvInt("ASSESSMENT_WIZARD_SESSION_TTL_IN_MINUTES", 30),
			HandoffTTLInMinutes:       utils.GetEnvInt("ASSESSMENT_HANDOFF_TTL_IN_MINUTES", 10),
			RunTTLInMinutes:           utils.GetEnvInt("ASSESSMENT_RUN_TTL_IN_MINUTES", 120),
			DispatchTimeoutInSeconds:  utils.GetEnvInt("ASSESSMENT_DISPATCH_TIMEOUT_IN_SECONDS", 15),
		},
		Admin: Admin{
			Username:         utils.GetEnvString("ADMIN_USERNAME", "admin"),
			PasswordHash:     utils.GetEnvString("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:        utils.GetEnvString("ADMIN_JWT_SECRET", ""),
			JWTExpTimeInHour: utils.GetEnvInt("ADMIN_JWT_EXP_TIME_IN_HOUR", 8),
		},
		PaymentGateway: PaymentGateway{
			BaseURL:   utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api.paystack.co"),
			SecretKey: utils.GetEnvString("PAYMENT_GATEWAY_SECRET_KEY", ""),
		},
		Blog: Blog{
			FeedURL: utils.GetEnvString("BLOG_FEED_URL", ""),
		},
	}
}
