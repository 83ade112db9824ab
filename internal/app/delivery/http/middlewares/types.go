package middlewares

import (
	"valivio-service/internal/app/config"
	"valivio-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}
