package http

import (
	"errors"
	httpErrors "itemservice/internal/platform/http"
	"itemservice/internal/platform/logger"
	"net/http"

	"itemservice/internal/adapters/http/response"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler renders the error a handler returns. *httpErrors.Error values
// choose their status and body; anything else is logged and hidden behind a
// generic 500.
func ErrorHandler(next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		contextLogger := logger.FromContext(r.Context()).With(
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
		)

		var httpErr *httpErrors.Error
		if !errors.As(err, &httpErr) {
			contextLogger.Error("Unexpected server error",
				logger.String("remote_addr", r.RemoteAddr),
				logger.Error(err))
			response.RespondError(w, http.StatusInternalServerError, errors.New("internal server error"))
			return
		}

		if httpErr.StatusCode >= http.StatusInternalServerError {
			contextLogger.Error("Request failed", logger.Int("status", httpErr.StatusCode), logger.Error(err))
		} else {
			contextLogger.Debug("Request rejected", logger.Int("status", httpErr.StatusCode), logger.Error(err))
		}

		if httpErr.Payload != nil {
			response.RespondJSON(w, httpErr.StatusCode, httpErr.Payload)
			return
		}
		response.RespondError(w, httpErr.StatusCode, httpErr)
	}
}
