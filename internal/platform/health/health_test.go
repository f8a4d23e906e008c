package health

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type stubChecker struct {
	name   string
	result CheckResult
	delay  time.Duration
	mu     sync.Mutex
	calls  int
}

func (c *stubChecker) Name() string {
	return c.name
}

func (c *stubChecker) Check(ctx context.Context) CheckResult {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return Unhealthy("check timed out", ctx.Err())
		}
	}
	return c.result
}

type HealthTestSuite struct {
	suite.Suite
	manager *Manager
	ctx     context.Context
}

func (s *HealthTestSuite) SetupTest() {
	s.manager = NewManager()
	s.ctx = context.Background()
}

func (s *HealthTestSuite) TestNewManager() {
	s.Assert().Empty(s.manager.checkers)
	s.Assert().Equal(DefaultCheckTimeout, s.manager.timeout)
	s.Assert().Empty(s.manager.CheckAll(s.ctx))
	s.Assert().True(s.manager.IsHealthy(s.ctx))
}

func (s *HealthTestSuite) TestCheckAll_CollectsEveryChecker() {
	s.manager.Register(&stubChecker{name: "catalog", result: Healthy("9 messages")})
	s.manager.Register(&stubChecker{name: "database", result: Unhealthy("ping failed", errors.New("connection refused"))})

	results := s.manager.CheckAll(s.ctx)

	s.Require().Len(results, 2)
	s.Assert().Equal(StatusHealthy, results["catalog"].Status)
	s.Assert().Equal("9 messages", results["catalog"].Message)
	s.Assert().Equal(StatusUnhealthy, results["database"].Status)
	s.Assert().Equal("connection refused", results["database"].Error)
	s.Assert().False(s.manager.IsHealthy(s.ctx))
}

func (s *HealthTestSuite) TestCheckAll_RunsConcurrently() {
	for i := 0; i < 5; i++ {
		s.manager.Register(&stubChecker{
			name:   fmt.Sprintf("slow-%d", i),
			result: Healthy("ok"),
			delay:  50 * time.Millisecond,
		})
	}

	start := time.Now()
	results := s.manager.CheckAll(s.ctx)

	s.Assert().Len(results, 5)
	s.Assert().Less(time.Since(start), 200*time.Millisecond)
	for _, result := range results {
		s.Assert().GreaterOrEqual(result.Latency, 50*time.Millisecond)
	}
}

func (s *HealthTestSuite) TestCheckAll_AppliesTimeout() {
	manager := NewManagerWithTimeout(10 * time.Millisecond)
	manager.Register(&stubChecker{name: "hung", result: Healthy("never"), delay: time.Second})

	results := manager.CheckAll(s.ctx)

	s.Assert().Equal(StatusUnhealthy, results["hung"].Status)
	s.Assert().Equal(context.DeadlineExceeded.Error(), results["hung"].Error)
}

func (s *HealthTestSuite) TestConcurrentRegisterAndCheck() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.manager.Register(&stubChecker{name: fmt.Sprintf("c-%d", i), result: Healthy("ok")})
		}(i)
		go func() {
			defer wg.Done()
			s.manager.IsHealthy(s.ctx)
		}()
	}
	wg.Wait()

	s.Assert().Len(s.manager.CheckAll(s.ctx), 20)
}

type panickingChecker struct{}

func (panickingChecker) Name() string { return "broken" }

func (panickingChecker) Check(context.Context) CheckResult {
	panic("catalog reloaded mid-check")
}

func (s *HealthTestSuite) TestCheckAll_PanicMarksUnhealthy() {
	s.manager.Register(panickingChecker{})
	s.manager.Register(&stubChecker{name: "catalog", result: Healthy("ok")})

	results := s.manager.CheckAll(s.ctx)

	s.Assert().Equal(StatusUnhealthy, results["broken"].Status)
	s.Assert().Equal("checker panicked", results["broken"].Message)
	s.Assert().Equal("catalog reloaded mid-check", results["broken"].Error)
	s.Assert().Equal(StatusHealthy, results["catalog"].Status)
}

func TestHealthTestSuite(t *testing.T) {
	suite.Run(t, new(HealthTestSuite))
}

func TestResultConstructors(t *testing.T) {
	assert.Equal(t, CheckResult{Status: StatusHealthy, Message: "ok"}, Healthy("ok"))
	assert.Equal(t, CheckResult{Status: StatusUnhealthy, Message: "down"}, Unhealthy("down", nil))
	assert.Equal(t,
		CheckResult{Status: StatusUnhealthy, Message: "down", Error: "boom"},
		Unhealthy("down", errors.New("boom")),
	)
}
