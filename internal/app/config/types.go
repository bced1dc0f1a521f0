package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Logger         *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		SMTP     SMTP
		Logger   Logger
	}

	InternalConfig struct {
		App            App
		EmailJS        EmailJS
		Assessment     Assessment
		Admin          Admin
		PaymentGateway PaymentGateway
		Blog           Blog
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RabbitMQMailerQueue        string
		MailerEmailSender          string
		CareersNotifyEmail         string
		CareersMaxUploadSizeInMB   int
	}

	// EmailJS holds the three secrets of the external email-dispatch
	// collaborator. All three must be present before any delivery attempt.
	EmailJS struct {
		BaseURL    string
		ServiceID  string
		TemplateID string
		PublicKey  string
	}

	Assessment struct {
		WizardSessionTTLInMinutes int
		HandoffTTLInMinutes       int
		RunTTLInMinutes           int
		DispatchTimeoutInSeconds  int
	}

	Admin struct {
		Username      string
		PasswordHash  string
		JWTSecret     string
		JWTExpTimeInHour int
	}

	PaymentGateway struct {
		BaseURL   string
		SecretKey string
	}

	Blog struct {
		FeedURL string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
