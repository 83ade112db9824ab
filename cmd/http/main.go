package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"valivio-service/internal/app/config"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/app/delivery/http/controllers"
	"valivio-service/internal/app/delivery/http/middlewares"
	"valivio-service/internal/app/delivery/http/routers"
	"valivio-service/internal/app/drivers/database"
	"valivio-service/internal/app/drivers/logger"
	smtpDriver "valivio-service/internal/app/drivers/mailer"
	"valivio-service/internal/app/drivers/messaging"
	storageDriver "valivio-service/internal/app/drivers/storage"
	"valivio-service/internal/app/services/core/auth"
	"valivio-service/internal/app/services/core/bookings"
	"valivio-service/internal/app/services/core/content"
	"valivio-service/internal/app/services/core/slots"
	"valivio-service/internal/app/services/shared/jwtmanager"
	"valivio-service/internal/app/services/shared/locker"
	"valivio-service/internal/app/services/shared/mailer"
	"valivio-service/internal/app/services/shared/redis"
	"valivio-service/internal/app/services/shared/smtp"
	"valivio-service/internal/app/services/shared/storage"
	"valivio-service/internal/migration"
	"valivio-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if err := internalConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	if internalConfig.App.AutoMigrate {
		if _, err := migration.Up(postgresDB, zapLogger); err != nil {
			log.Fatalf("Error running migrations: %v", err)
		}
	}

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if internalConfig.Content.Source == constvars.ContentSourceMinio {
		bootstrap.Minio = storageDriver.NewMinio(driverConfig, internalConfig.Content.Bucket)
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", internalConfig.App.Port))
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

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue, bootstrap.Logger)
	if err != nil {
		return err
	}
	smtpService := smtp.NewSmtpService(smtpDriver.NewSMTPClient(bootstrap.DriverConfig), bootstrap.Logger)

	var contentStorage contracts.ContentStorage
	if bootstrap.Minio != nil {
		contentStorage = storage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig.Content.Bucket)
	} else {
		contentStorage = storage.NewLocalStorage(bootstrap.InternalConfig.Content.Dir)
	}

	tokenManager, err := jwtmanager.NewJWTManager(bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Slots
	slotPostgresRepository := slots.NewSlotPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	slotUsecase, err := slots.NewSlotUsecase(slotPostgresRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		return err
	}
	slotController := controllers.NewSlotController(bootstrap.Logger, slotUsecase)

	// Bookings
	bookingPostgresRepository := bookings.NewBookingPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	bookingUsecase, err := bookings.NewBookingUsecase(
		bookingPostgresRepository,
		slotPostgresRepository,
		slotUsecase,
		mailerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Auth
	adminPostgresRepository := auth.NewAdminPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(adminPostgresRepository, redisRepository, tokenManager, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Content
	contentUsecase := content.NewContentUsecase(contentStorage, bootstrap.Logger)
	contentController := controllers.NewContentController(bootstrap.Logger, contentUsecase)

	// Workers
	mailerWorker := mailer.NewWorker(bootstrap.Logger, bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue, smtpService)
	if err := mailerWorker.Start(context.Background()); err != nil {
		return err
	}
	bootstrap.MailerWorkerStop = mailerWorker.Stop

	slotWorker := slots.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, slotUsecase)
	slotWorker.Start(context.Background())
	bootstrap.SlotWorkerStop = slotWorker.Stop

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		slotController,
		bookingController,
		authController,
		contentController,
	)
	return nil
}
