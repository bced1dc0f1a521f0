package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serenemind-service/internal/app/config"
	"serenemind-service/internal/app/delivery/http/middlewares"
	"serenemind-service/internal/app/delivery/http/routers"
	"serenemind-service/internal/app/drivers/database"
	"serenemind-service/internal/app/drivers/logger"
	smtpdriver "serenemind-service/internal/app/drivers/mailer"
	"serenemind-service/internal/app/drivers/messaging"
	miniodriver "serenemind-service/internal/app/drivers/storage"
	"serenemind-service/internal/app/services/core/assessments"
	"serenemind-service/internal/app/services/core/auth"
	"serenemind-service/internal/app/services/core/blogs"
	"serenemind-service/internal/app/services/core/careers"
	"serenemind-service/internal/app/services/core/instruments"
	"serenemind-service/internal/app/services/core/notifications"
	"serenemind-service/internal/app/services/core/payments"
	"serenemind-service/internal/app/services/core/sessions"
	"serenemind-service/internal/app/services/shared/dispatch"
	"serenemind-service/internal/app/services/shared/jwtmanager"
	"serenemind-service/internal/app/services/shared/mailer"
	"serenemind-service/internal/app/services/shared/payment_gateway"
	"serenemind-service/internal/app/services/shared/redis"
	"serenemind-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	stopWorker := bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})
	defer stopWorker()

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) func() {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	minioClient := miniodriver.NewMinio(bootstrap.DriverConfig)
	minioStorage := storage.NewMinioStorage(minioClient)

	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		bootstrap.Logger.Fatalf("Cannot create mailer service: %v", err)
	}

	smtpClient := smtpdriver.NewSMTPClient(bootstrap.DriverConfig)
	mailerWorker, err := mailer.NewWorker(bootstrap.ZapLogger, bootstrap.RabbitMQ, smtpClient, bootstrap.InternalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		bootstrap.Logger.Fatalf("Cannot create mailer worker: %v", err)
	}
	stopWorker, err := mailerWorker.Start(context.Background())
	if err != nil {
		bootstrap.Logger.Fatalf("Cannot start mailer worker: %v", err)
	}

	emailDispatchService := dispatch.NewEmailJSService(bootstrap.InternalConfig)
	paystackService := payment_gateway.NewPaystackService(bootstrap.InternalConfig)

	jwtManager, err := jwtmanager.NewJWTManager(bootstrap.InternalConfig)
	if err != nil {
		bootstrap.Logger.Fatalf("Cannot create JWT manager: %v", err)
	}

	// Middlewares
	middlewareInstance := &middlewares.Middlewares{
		Log:            bootstrap.ZapLogger,
		JWTManager:     jwtManager,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Wizard sessions
	sessionUsecase := sessions.NewSessionUsecase(redisRepository, bootstrap.InternalConfig)
	sessionController := sessions.NewSessionController(bootstrap.ZapLogger, sessionUsecase)

	// Instruments
	instrumentUsecase := instruments.NewInstrumentUsecase()
	instrumentController := instruments.NewInstrumentController(bootstrap.ZapLogger, instrumentUsecase)

	// Assessments
	notifierUsecase := notifications.NewNotifierUsecase(emailDispatchService)
	assessmentUsecase := assessments.NewAssessmentUsecase(bootstrap.ZapLogger, redisRepository, notifierUsecase, bootstrap.InternalConfig)
	assessmentController := assessments.NewAssessmentController(bootstrap.ZapLogger, assessmentUsecase)

	// Careers
	careerMongoRepository := careers.NewCareerMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	careerUsecase := careers.NewCareerUsecase(bootstrap.ZapLogger, careerMongoRepository, minioStorage, mailerService, bootstrap.DriverConfig, bootstrap.InternalConfig)
	careerController := careers.NewCareerController(bootstrap.ZapLogger, careerUsecase, bootstrap.InternalConfig)

	// Payments
	paymentUsecase := payments.NewPaymentUsecase(paystackService)
	paymentController := payments.NewPaymentController(bootstrap.ZapLogger, paymentUsecase)

	// Blogs
	blogUsecase := blogs.NewBlogUsecase(bootstrap.InternalConfig)
	blogController := blogs.NewBlogController(bootstrap.ZapLogger, blogUsecase)

	// Admin auth
	authUsecase := auth.NewAuthUsecase(jwtManager, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.ZapLogger, authUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		sessionController,
		instrumentController,
		assessmentController,
		careerController,
		paymentController,
		blogController,
		authController,
	)

	return stopWorker
}
