package main

import (
	"context"
	"fmt"
	"log"
	"time"
	"valivio-service/internal/app/config"
	"valivio-service/internal/app/drivers/database"
	"valivio-service/internal/app/drivers/logger"
	"valivio-service/internal/app/services/core/auth"
	"valivio-service/internal/migration"
	"valivio-service/internal/pkg/utils"
)

// seed creates the admin account, or resets its password when it exists.
func main() {
	email := utils.GetEnvString("ADMIN_EMAIL", "")
	password := utils.GetEnvString("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	if internalConfig.App.AutoMigrate {
		if _, err := migration.Up(db, zapLogger); err != nil {
			log.Fatalf("Error running migrations: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	adminRepository := auth.NewAdminPostgresRepository(db, zapLogger)
	authUsecase := auth.NewAuthUsecase(adminRepository, nil, nil, zapLogger)

	admin, err := authUsecase.SeedAdmin(ctx, email, password)
	if err != nil {
		log.Fatalf("Error seeding admin: %v", err)
	}
	fmt.Printf("Admin ready: %s\n", admin.Email)
}
