package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"
	"valivio-service/internal/app/config"

	_ "github.com/lib/pq"
)

func PostgresConnectionString(driverConfig *config.DriverConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		driverConfig.PostgresDB.Host,
		driverConfig.PostgresDB.Port,
		driverConfig.PostgresDB.Username,
		driverConfig.PostgresDB.Password,
		driverConfig.PostgresDB.DBName,
		driverConfig.PostgresDB.SSLMode)
}

func NewPostgresDB(driverConfig *config.DriverConfig) *sql.DB {
	db, err := sql.Open("postgres", PostgresConnectionString(driverConfig))
	if err != nil {
		log.Fatalf("Failed to open postgres database connection: %s", err.Error())
	}

	db.SetMaxOpenConns(driverConfig.PostgresDB.MaxOpenConns)
	db.SetMaxIdleConns(driverConfig.PostgresDB.MaxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	err = db.Ping()
	if err != nil {
		log.Fatalf("Failed to connect to postgres database: %s", err.Error())
	}

	log.Println("Successfully connected to postgres database")

	return db
}
