package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"itemservice/internal/adapters/http/health"
	"itemservice/internal/adapters/http/item"
	"itemservice/internal/adapters/http/message"
	"itemservice/internal/adapters/http/response"
	"itemservice/internal/config"
	"itemservice/internal/platform/logger"
	"itemservice/internal/platform/metrics"
	platformMiddleware "itemservice/internal/platform/middleware"
)

// MaxRequestBody caps item payloads; larger bodies fail decoding with 400.
const MaxRequestBody = 1 << 20

var (
	errRouteNotFound    = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
)

type RouterDependencies struct {
	Config           *config.HttpConfig
	Logger           logger.Logger
	ItemHandler      *item.Handler
	MessageHandler   *message.Handler
	LivenessHandler  *health.LivenessHandler
	ReadinessHandler *health.ReadinessHandler
	MetricsProvider  *metrics.Provider
}

func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(stack(deps)...)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.RespondError(w, http.StatusNotFound, errRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.RespondError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})

	r.Get("/health/live", deps.LivenessHandler.Check)
	r.Get("/health/ready", deps.ReadinessHandler.Check)
	r.Handle("/metrics", deps.MetricsProvider.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.RequestSize(MaxRequestBody))
		api.Route("/items", mountItems(deps.ItemHandler))
		api.Route("/messages", mountMessages(deps.MessageHandler))
	})

	return r
}

// stack orders the shared middleware: request identity and logging wrap
// everything, recovery sits inside metrics so panics are counted as 500s.
func stack(deps RouterDependencies) []func(http.Handler) http.Handler {
	cfg := deps.Config

	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		platformMiddleware.RequestLogger(deps.Logger),
		platformMiddleware.MetricsMiddleware(deps.MetricsProvider),
		platformMiddleware.Recovery(deps.Logger),
		middleware.StripSlashes,
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   cfg.CORS.AllowedHeaders,
			ExposedHeaders:   cfg.CORS.ExposedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           cfg.CORS.MaxAge,
		}),
		httprate.LimitAll(cfg.RateLimit.GlobalRequests, window(cfg.RateLimit.GlobalWindow)),
		httprate.LimitByIP(cfg.RateLimit.RequestsPerIP, window(cfg.RateLimit.WindowSeconds)),
	}
}

func window(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

func mountItems(h *item.Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/", ErrorHandler(h.ListItems))
		r.Post("/", ErrorHandler(h.CreateItem))
		r.Post("/validate", ErrorHandler(h.ValidateItem))
		r.Get("/{id}", ErrorHandler(h.GetItem))
		r.Put("/{id}", ErrorHandler(h.UpdateItem))
	}
}

func mountMessages(h *message.Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/codes", ErrorHandler(h.Codes))
		r.Get("/resolve", ErrorHandler(h.Resolve))
	}
}
