package middlewares

import (
	"net/http"
	"time"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit caps every client IP at App.MaxRequests per second.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
