package main

import (
	"context"
	"curaflow-service/internal/app/config"
	"curaflow-service/internal/app/delivery/http/controllers"
	"curaflow-service/internal/app/delivery/http/middlewares"
	"curaflow-service/internal/app/delivery/http/routers"
	"curaflow-service/internal/app/drivers/database"
	"curaflow-service/internal/app/drivers/logger"
	"curaflow-service/internal/app/drivers/messaging"
	"curaflow-service/internal/app/drivers/storage"
	"curaflow-service/internal/app/services/core/conversations"
	"curaflow-service/internal/app/services/core/patients"
	"curaflow-service/internal/app/services/core/questionnaires"
	"curaflow-service/internal/app/services/core/teams"
	"curaflow-service/internal/app/services/core/templates"
	"curaflow-service/internal/app/services/core/users"
	"curaflow-service/internal/app/services/shared/notifications"
	"curaflow-service/internal/app/services/shared/redis"
	"curaflow-service/internal/app/services/shared/reports"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinioClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap, minioClient)

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

	log.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	notificationPublisher, err := notifications.NewNotificationPublisher(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Messaging)
	if err != nil {
		log.Fatalf("Failed to set up notification publisher: %v", err)
	}
	reportArchive := reports.NewMinioReportArchive(minioClient, bootstrap.DriverConfig.Minio.BucketName)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, redisRepository)
	bootstrap.Router.Use(appMiddlewares.RequestIDMiddleware)
	bootstrap.Router.Use(appMiddlewares.Logging(bootstrap.Logger))
	bootstrap.Router.Use(appMiddlewares.RequestLogger(bootstrap.InternalConfig.App, logger.NewLogrusLogger(bootstrap.InternalConfig)))

	// Team
	teamMongoRepository := teams.NewTeamMongoRepository(bootstrap.MongoDB, dbName)
	teamUsecase := teams.NewTeamUsecase(teamMongoRepository, bootstrap.Logger)
	teamController := controllers.NewTeamController(bootstrap.Logger, teamUsecase)

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, teamMongoRepository, bootstrap.Logger)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase)

	// Template
	templateMongoRepository := templates.NewTemplateMongoRepository(bootstrap.MongoDB, dbName)
	templateUsecase := templates.NewTemplateUsecase(templateMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	templateController := controllers.NewTemplateController(bootstrap.Logger, templateUsecase)

	// Conversation
	conversationMongoRepository := conversations.NewConversationMongoRepository(bootstrap.MongoDB, dbName)
	chatLogMongoRepository := conversations.NewChatLogMongoRepository(bootstrap.MongoDB, dbName)
	conversationUsecase := conversations.NewConversationUsecase(conversationMongoRepository, chatLogMongoRepository, bootstrap.Logger)
	conversationController := controllers.NewConversationController(bootstrap.Logger, conversationUsecase)

	// Questionnaire
	questionnaireMongoRepository := questionnaires.NewQuestionnaireMongoRepository(bootstrap.MongoDB, dbName)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(
		questionnaireMongoRepository,
		templateUsecase,
		patientMongoRepository,
		conversationMongoRepository,
		chatLogMongoRepository,
		notificationPublisher,
		reportArchive,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	questionnaireController := controllers.NewQuestionnaireController(bootstrap.Logger, questionnaireUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		teamController,
		userController,
		patientController,
		templateController,
		questionnaireController,
		conversationController,
	)
}
