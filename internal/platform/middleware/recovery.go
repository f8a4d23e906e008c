package middleware

import (
	"encoding/json"
	"fmt"
	"itemservice/internal/platform/logger"
	"net/http"
	"runtime/debug"
)

// Recovery turns a panic into a 500 JSON error. A panic raised by adding to
// a sealed violation set lands here like any other.
func Recovery(log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				contextLogger := logger.FromContextOr(r.Context(), log)
				contextLogger.Error("Panic recovered",
					logger.String("method", r.Method),
					logger.String("url", r.URL.Path),
					logger.String("remote_addr", r.RemoteAddr),
					logger.String("user_agent", r.UserAgent()),
					logger.String("panic", fmt.Sprintf("%v", rec)),
					logger.String("stack", string(debug.Stack())),
				)

				w.Header().Set("Connection", "close")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
