package middlewares

import (
	"context"
	"net/http"
	"strings"
	"valivio-service/internal/app/models"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate admits requests carrying a live admin token, read from the
// session cookie or, failing that, an Authorization: Bearer header.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		token := tokenFromRequest(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		claims, err := m.AuthUsecase.VerifyToken(r.Context(), token)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate rejected request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ADMIN_CLAIMS_KEY, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func AdminClaimsFromContext(ctx context.Context) (*models.AdminClaims, bool) {
	claims, ok := ctx.Value(constvars.CONTEXT_ADMIN_CLAIMS_KEY).(*models.AdminClaims)
	return claims, ok && claims != nil
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(constvars.AdminTokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get(constvars.HeaderAuthorization)
	if len(header) > len(constvars.BearerPrefix) && strings.EqualFold(header[:len(constvars.BearerPrefix)], constvars.BearerPrefix) {
		return strings.TrimSpace(header[len(constvars.BearerPrefix):])
	}
	return ""
}
