package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agenda-service/internal/app/config"
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/delivery/http/routers"
	"agenda-service/internal/app/drivers/database"
	"agenda-service/internal/app/drivers/logger"
	"agenda-service/internal/app/drivers/messaging"
	"agenda-service/internal/app/services/core/appointments"
	"agenda-service/internal/app/services/core/auth"
	"agenda-service/internal/app/services/core/businesses"
	"agenda-service/internal/app/services/core/catalog"
	"agenda-service/internal/app/services/core/session"
	"agenda-service/internal/app/services/core/users"
	"agenda-service/internal/app/services/core/workers"
	"agenda-service/internal/app/services/shared/locker"
	"agenda-service/internal/app/services/shared/notifier"
	"agenda-service/internal/app/services/shared/ratelimiter"
	redisrepo "agenda-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
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
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap)

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

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing application dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	loginLimiter := ratelimiter.NewLoginLimiter(bootstrap.InternalConfig.App.LoginMaxAttemptsPerMinute)

	eventPublisher, err := notifier.NewNotifierService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.AppointmentEventsQueue,
		bootstrap.Logger,
	)
	if err != nil {
		log.Fatalf("Error setting up the event publisher: %v", err)
	}

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Business
	businessMongoRepository := businesses.NewBusinessMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	businessUsecase := businesses.NewBusinessUsecase(businessMongoRepository, bootstrap.Logger)
	businessController := businesses.NewBusinessController(bootstrap.Logger, businessUsecase)

	// Service catalog
	serviceMongoRepository := catalog.NewServiceMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	serviceUsecase := catalog.NewServiceUsecase(serviceMongoRepository, bootstrap.Logger)
	serviceController := catalog.NewServiceController(bootstrap.Logger, serviceUsecase)

	// Worker
	workerMongoRepository := workers.NewWorkerMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	workerUsecase := workers.NewWorkerUsecase(workerMongoRepository, bootstrap.Logger)
	workerController := workers.NewWorkerController(bootstrap.Logger, workerUsecase)

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	userUsecase := users.NewUserUsecase(userMongoRepository, workerMongoRepository, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		userMongoRepository,
		sessionService,
		loginLimiter,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		serviceMongoRepository,
		workerMongoRepository,
		lockService,
		eventPublisher,
		bootstrap.Logger,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(
		bootstrap.Logger,
		sessionService,
		businessUsecase,
		bootstrap.InternalConfig,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		businessController,
		authController,
		serviceController,
		workerController,
		userController,
		appointmentController,
	)
}
