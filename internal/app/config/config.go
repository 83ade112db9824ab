package config

import (
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:         utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:         utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username:     utils.GetEnvString("POSTGRES_USERNAME", "valivio"),
			Password:     utils.GetEnvString("POSTGRES_PASSWORD", "valivio"),
			DBName:       utils.GetEnvString("POSTGRES_DB_NAME", "valivio"),
			SSLMode:      utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
			MaxOpenConns: utils.GetEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns: utils.GetEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "no-reply@valivio.example"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                 utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                utils.GetEnvString("APP_PORT", ":3000"),
			Timezone:            utils.GetEnvString("APP_TIMEZONE", "Europe/Warsaw"),
			EndpointPrefix:      utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			PublicDir:           utils.GetEnvString("APP_PUBLIC_DIR", ""),
			AllowedOrigins:      utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:         utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			AutoMigrate:         utils.GetEnvBool("APP_AUTO_MIGRATE", true),
			RabbitMQMailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "valivio.mailer"),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", ""),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		Auth: Auth{
			LoginAttemptsPerMinute: utils.GetEnvInt("AUTH_LOGIN_ATTEMPTS_PER_MINUTE", 5),
			LoginBurst:             utils.GetEnvInt("AUTH_LOGIN_BURST", 5),
			LoginBlockMinutes:      utils.GetEnvInt("AUTH_LOGIN_BLOCK_MINUTES", 5),
		},
		Booking: Booking{
			LegacyWindowDays:            utils.GetEnvInt("BOOKING_LEGACY_WINDOW_DAYS", 21),
			MaxRangeDays:                utils.GetEnvInt("BOOKING_MAX_RANGE_DAYS", 366),
			AvailabilityCacheTTLSeconds: utils.GetEnvInt("BOOKING_AVAILABILITY_CACHE_TTL_SECONDS", 60),
			NotifyEmail:                 utils.GetEnvString("BOOKING_NOTIFY_EMAIL", ""),
		},
		Content: Content{
			Source: utils.GetEnvString("CONTENT_SOURCE", constvars.ContentSourceLocal),
			Dir:    utils.GetEnvString("CONTENT_DIR", "public/assets"),
			Bucket: utils.GetEnvString("CONTENT_BUCKET", "valivio-content"),
		},
		Worker: Worker{
			SlotCleanupCronSpec: utils.GetEnvString("WORKER_SLOT_CLEANUP_CRON_SPEC", "@daily"),
			SlotRetentionDays:   utils.GetEnvInt("WORKER_SLOT_RETENTION_DAYS", 30),
		},
	}
}
