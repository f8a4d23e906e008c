package health

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

const DefaultCheckTimeout = 5 * time.Second

type CheckResult struct {
	Status  Status        `json:"status"`
	Message string        `json:"message,omitempty"`
	Latency time.Duration `json:"latency"`
	Error   string        `json:"error,omitempty"`
}

func Healthy(message string) CheckResult {
	return CheckResult{Status: StatusHealthy, Message: message}
}

func Unhealthy(message string, err error) CheckResult {
	result := CheckResult{Status: StatusUnhealthy, Message: message}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type ManagerInterface interface {
	Register(checker Checker)
	CheckAll(ctx context.Context) map[string]CheckResult
	IsHealthy(ctx context.Context) bool
}

// Manager runs registered checkers concurrently, each bounded by its own
// timeout.
type Manager struct {
	checkers []Checker
	timeout  time.Duration
	mu       sync.RWMutex
}

var _ ManagerInterface = (*Manager)(nil)

func NewManager() *Manager {
	return NewManagerWithTimeout(DefaultCheckTimeout)
}

func NewManagerWithTimeout(timeout time.Duration) *Manager {
	return &Manager{
		checkers: make([]Checker, 0),
		timeout:  timeout,
	}
}

func (m *Manager) Register(checker Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkers = append(m.checkers, checker)
}

func (m *Manager) CheckAll(ctx context.Context) map[string]CheckResult {
	m.mu.RLock()
	checkers := make([]Checker, len(m.checkers))
	copy(checkers, m.checkers)
	m.mu.RUnlock()

	results := make(map[string]CheckResult, len(checkers))
	var (
		wg  sync.WaitGroup
		rmu sync.Mutex
	)

	for _, checker := range checkers {
		wg.Add(1)
		go func(checker Checker) {
			defer wg.Done()
			result := m.run(ctx, checker)

			rmu.Lock()
			results[checker.Name()] = result
			rmu.Unlock()
		}(checker)
	}

	wg.Wait()
	return results
}

func (m *Manager) run(ctx context.Context, checker Checker) (result CheckResult) {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result = Unhealthy("checker panicked", fmt.Errorf("%v", r))
		}
		result.Latency = time.Since(start)
	}()

	return checker.Check(ctx)
}

func (m *Manager) IsHealthy(ctx context.Context) bool {
	for _, result := range m.CheckAll(ctx) {
		if result.Status == StatusUnhealthy {
			return false
		}
	}
	return true
}
