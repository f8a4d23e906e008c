package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"itemservice/internal/adapters/http/response"
	"itemservice/internal/platform/health"
	"itemservice/internal/platform/logger"
	"itemservice/internal/version"
)

const DefaultReadinessTimeout = 5 * time.Second

type ReadinessHandler struct {
	build          version.BuildInfo
	healthManager  health.ManagerInterface
	timeout        time.Duration
	componentTypes map[string]string
}

type ReadinessOption func(*ReadinessHandler)

// WithTimeout bounds a whole readiness probe. Zero leaves only the request
// context in charge.
func WithTimeout(timeout time.Duration) ReadinessOption {
	return func(h *ReadinessHandler) {
		h.timeout = timeout
	}
}

// WithComponentTypes labels checkers by name; unlisted ones are reported as
// ComponentDefault.
func WithComponentTypes(types map[string]string) ReadinessOption {
	return func(h *ReadinessHandler) {
		for name, kind := range types {
			h.componentTypes[name] = kind
		}
	}
}

func NewReadinessHandler(build version.BuildInfo, healthManager health.ManagerInterface, opts ...ReadinessOption) *ReadinessHandler {
	h := &ReadinessHandler{
		build:          build,
		healthManager:  healthManager,
		timeout:        DefaultReadinessTimeout,
		componentTypes: make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	results := h.healthManager.CheckAll(ctx)
	now := time.Now().UTC()

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	body := ReadinessResponse{
		Status:    StatusPass,
		Version:   h.build.Version,
		ReleaseId: h.build.GitCommit,
		Checks:    make(map[string][]CheckDetail, len(results)),
	}

	for _, name := range names {
		result := results[name]
		detail := h.detail(name, result, now)
		body.Checks[name] = []CheckDetail{detail}
		body.Status = worst(body.Status, detail.Status)

		if detail.Status == StatusFail {
			body.Notes = append(body.Notes, name+" is unavailable")
		}
	}

	statusCode := http.StatusOK
	if body.Status == StatusFail {
		statusCode = http.StatusServiceUnavailable
		logger.FromContext(ctx).Warn("Readiness check failed",
			logger.Int("failed", len(body.Notes)),
			logger.Any("notes", body.Notes))
	}

	response.RespondJSON(w, statusCode, body)
}

func (h *ReadinessHandler) detail(name string, result health.CheckResult, at time.Time) CheckDetail {
	kind, ok := h.componentTypes[name]
	if !ok {
		kind = ComponentDefault
	}

	detail := CheckDetail{
		ComponentId:   name,
		ComponentType: kind,
		ObservedValue: float64(result.Latency.Microseconds()) / 1000,
		ObservedUnit:  "ms",
		Status:        statusOf(result.Status),
		Time:          at,
		Output:        result.Message,
	}
	if result.Error != "" {
		detail.Output = result.Error
	}
	return detail
}

func statusOf(status health.Status) Status {
	switch status {
	case health.StatusHealthy:
		return StatusPass
	case health.StatusUnhealthy:
		return StatusFail
	default:
		return StatusWarn
	}
}

func worst(a, b Status) Status {
	rank := map[Status]int{StatusPass: 0, StatusWarn: 1, StatusFail: 2}
	if rank[b] > rank[a] {
		return b
	}
	return a
}
