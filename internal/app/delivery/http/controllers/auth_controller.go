package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"
	"valivio-service/internal/app/config"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/app/delivery/http/middlewares"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/dto/responses"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	onceAuthController.Do(func() {
		instance := &AuthController{
			Log:            logger,
			AuthUsecase:    authUsecase,
			InternalConfig: internalConfig,
		}
		authControllerInstance = instance
	})
	return authControllerInstance
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Login)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		ctrl.Log.Warn("AuthController.Login error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, ctrl.sessionCookie(result.Token, result.ExpiresAt))

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAdminIDKey, result.Admin.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.OK{OK: true})
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	claims, ok := middlewares.AdminClaimsFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.AuthUsecase.Logout(ctx, claims); err != nil {
		ctrl.Log.Error("AuthController.Logout error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	expired := ctrl.sessionCookie("", time.Unix(0, 0))
	expired.MaxAge = -1
	http.SetCookie(w, expired)

	ctrl.Log.Info("AuthController.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAdminIDKey, claims.AdminID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.OK{OK: true})
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.AdminClaimsFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.Me(ctx, claims)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *AuthController) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     constvars.AdminTokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   ctrl.InternalConfig.App.Env == constvars.AppEnvProduction,
	}
	if token != "" {
		cookie.MaxAge = int(time.Until(expiresAt).Seconds())
	}
	return cookie
}
