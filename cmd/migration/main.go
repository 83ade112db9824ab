package main

import (
	"flag"
	"log"
	"valivio-service/internal/app/config"
	"valivio-service/internal/app/drivers/database"
	"valivio-service/internal/app/drivers/logger"
	"valivio-service/internal/migration"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 1, "number of migrations to roll back with -direction=down; 0 means all")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	switch *direction {
	case "up":
		n, err := migration.Up(db, zapLogger)
		if err != nil {
			log.Fatalf("Error executing migration: %v", err)
		}
		log.Printf("Applied %d migrations!", n)
	case "down":
		n, err := migration.Down(db, zapLogger, *steps)
		if err != nil {
			log.Fatalf("Error rolling back migration: %v", err)
		}
		log.Printf("Rolled back %d migrations!", n)
	default:
		log.Fatalf("Unknown direction %q, expected up or down", *direction)
	}
}
