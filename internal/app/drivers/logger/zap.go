package logger

import (
	"log"
	"valivio-service/internal/app/config"
	"valivio-service/internal/pkg/constvars"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "valivio-service"

func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	logLevel, err := zapcore.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		log.Printf("Unknown logger level %q, falling back to info", driverConfig.Logger.Level)
		logLevel = zapcore.InfoLevel
	}

	outputPaths := []string{"stdout"}
	errorOutputPaths := []string{"stderr"}
	if internalConfig.App.Env == constvars.AppEnvProduction {
		outputPaths = append(outputPaths, driverConfig.Logger.OutputFileName)
		errorOutputPaths = append(errorOutputPaths, driverConfig.Logger.OutputErrorFileName)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(logLevel),
		Development:       internalConfig.App.Env == constvars.AppEnvDevelopment,
		DisableStacktrace: internalConfig.App.Env == constvars.AppEnvProduction,
		Encoding:          "json",
		EncoderConfig:     encoderConfig,
		OutputPaths:       outputPaths,
		ErrorOutputPaths:  errorOutputPaths,
		InitialFields:     map[string]interface{}{"service": serviceName},
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger
}
