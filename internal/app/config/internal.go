package config

import (
	"errors"
	"fmt"
	"time"
	"valivio-service/internal/pkg/constvars"
)

type InternalConfig struct {
	App     App
	JWT     AppJWT
	Auth    Auth
	Booking Booking
	Content Content
	Worker  Worker
}

type App struct {
	Env                 string
	Port                string
	Timezone            string
	EndpointPrefix      string
	PublicDir           string
	AllowedOrigins      []string
	MaxRequests         int
	ShutdownTimeout     int
	AutoMigrate         bool
	RabbitMQMailerQueue string
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type Auth struct {
	LoginAttemptsPerMinute int
	LoginBurst             int
	LoginBlockMinutes      int
}

type Booking struct {
	// LegacyWindowDays is used when availability is requested without an end date.
	LegacyWindowDays            int
	MaxRangeDays                int
	AvailabilityCacheTTLSeconds int
	// NotifyEmail receives a message for every new booking; empty disables it.
	NotifyEmail string
}

type Content struct {
	Source string
	Dir    string
	Bucket string
}

type Worker struct {
	SlotCleanupCronSpec string
	SlotRetentionDays   int
}

func (c *InternalConfig) IsProduction() bool {
	return c.App.Env == constvars.AppEnvProduction
}

func (c *InternalConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

func (c *InternalConfig) TokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpTimeInHour) * time.Hour
}

func (c *InternalConfig) AvailabilityCacheTTL() time.Duration {
	return time.Duration(c.Booking.AvailabilityCacheTTLSeconds) * time.Second
}

func (c *InternalConfig) Validate() error {
	var errs []error

	if c.JWT.Secret == "" {
		if c.IsProduction() {
			errs = append(errs, errors.New("JWT_SECRET must be set in production"))
		} else {
			c.JWT.Secret = "development-only-secret"
		}
	}
	if c.JWT.ExpTimeInHour <= 0 {
		errs = append(errs, fmt.Errorf("JWT_EXP_TIME_IN_HOUR must be positive, got %d", c.JWT.ExpTimeInHour))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("APP_TIMEZONE %q: %w", c.App.Timezone, err))
	}
	if c.Booking.LegacyWindowDays <= 0 {
		errs = append(errs, fmt.Errorf("BOOKING_LEGACY_WINDOW_DAYS must be positive, got %d", c.Booking.LegacyWindowDays))
	}
	if c.Booking.MaxRangeDays < c.Booking.LegacyWindowDays {
		errs = append(errs, fmt.Errorf("BOOKING_MAX_RANGE_DAYS (%d) must not be below the legacy window (%d)", c.Booking.MaxRangeDays, c.Booking.LegacyWindowDays))
	}
	switch c.Content.Source {
	case constvars.ContentSourceLocal, constvars.ContentSourceMinio:
	default:
		errs = append(errs, fmt.Errorf("CONTENT_SOURCE must be %q or %q, got %q", constvars.ContentSourceLocal, constvars.ContentSourceMinio, c.Content.Source))
	}
	if c.Auth.LoginAttemptsPerMinute <= 0 || c.Auth.LoginBurst <= 0 {
		errs = append(errs, errors.New("AUTH_LOGIN_ATTEMPTS_PER_MINUTE and AUTH_LOGIN_BURST must be positive"))
	}
	if c.Worker.SlotRetentionDays < 0 {
		errs = append(errs, fmt.Errorf("WORKER_SLOT_RETENTION_DAYS must not be negative, got %d", c.Worker.SlotRetentionDays))
	}

	return errors.Join(errs...)
}
