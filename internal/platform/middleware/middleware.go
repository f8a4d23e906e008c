package middleware

import (
	"itemservice/internal/platform/logger"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger attaches a request scoped logger to the context and logs one
// line per request. Server errors log at error level, client errors at warn.
func RequestLogger(baseLogger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			reqID := middleware.GetReqID(r.Context())
			if reqID != "" {
				ww.Header().Set(middleware.RequestIDHeader, reqID)
			}
			contextLogger := baseLogger.With(logger.String("request_id", reqID))
			ctx := logger.WithLogger(r.Context(), contextLogger)

			next.ServeHTTP(ww, r.WithContext(ctx))

			fields := []logger.Field{
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("route", routePattern(r)),
				logger.String("remote_addr", r.RemoteAddr),
				logger.Int("status", ww.Status()),
				logger.Int("bytes", ww.BytesWritten()),
				logger.String("duration", time.Since(start).String()),
			}

			switch status := ww.Status(); {
			case status >= http.StatusInternalServerError:
				contextLogger.Error("HTTP Request", fields...)
			case status >= http.StatusBadRequest:
				contextLogger.Warn("HTTP Request", fields...)
			default:
				contextLogger.Info("HTTP Request", fields...)
			}
		})
	}
}

// routePattern returns the matched chi pattern, e.g. /api/items/{id}, so
// item IDs do not end up in labels. Unmatched requests yield "unmatched".
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
