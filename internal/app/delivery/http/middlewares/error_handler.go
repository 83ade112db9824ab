package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/utils"
)

// ErrorHandler turns a panic in any handler into a 500 JSON body.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("%s: %v", constvars.ErrDevPanicRecovered, x)
				}

				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
