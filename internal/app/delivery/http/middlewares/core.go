package middlewares

import (
	"context"
	"net/http"
	"strings"
	"time"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/utils"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sw *statusWriter) WriteHeader(code int) {
	if sw.status == 0 {
		sw.status = code
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}
	n, err := sw.ResponseWriter.Write(b)
	sw.bytes += n
	return n, err
}

// Logging writes one line per request. Static asset hits are logged at debug.
func (m *Middlewares) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}

		next.ServeHTTP(sw, r)

		if sw.status == 0 {
			sw.status = http.StatusOK
		}
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		fields := []zap.Field{
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
			zap.String(constvars.LoggingRemoteAddrKey, utils.ClientIP(r)),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			zap.Int(constvars.LoggingStatusCodeKey, sw.status),
			zap.Int("bytes", sw.bytes),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Bool(constvars.LoggingSuccessKey, sw.status < constvars.StatusBadRequest),
		}

		level := zapcore.InfoLevel
		switch {
		case sw.status >= constvars.StatusInternalServerError:
			level = zapcore.ErrorLevel
		case !strings.HasPrefix(r.URL.Path, "/"+m.InternalConfig.App.EndpointPrefix+"/"):
			level = zapcore.DebugLevel
		}
		if ce := m.Log.Check(level, "HTTP request served"); ce != nil {
			ce.Write(fields...)
		}
	})
}

// RequestIDMiddleware reuses the caller's X-Request-ID when present and echoes it back.
func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(constvars.HeaderXRequestID))
		fromClient := requestID != ""
		if !fromClient {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, fromClient)
		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
