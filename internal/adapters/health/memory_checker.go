package health

import (
	"context"
	"fmt"
	"itemservice/internal/platform/health"
)

type Counter interface {
	Count(ctx context.Context) (int, error)
}

type MemoryChecker struct {
	store Counter
}

func NewMemoryChecker(store Counter) *MemoryChecker {
	return &MemoryChecker{store: store}
}

const MemoryCheckerName = "memory_storage"

func (c *MemoryChecker) Name() string {
	return MemoryCheckerName
}

func (c *MemoryChecker) Check(ctx context.Context) health.CheckResult {
	if err := ctx.Err(); err != nil {
		return health.Unhealthy("memory storage check cancelled", err)
	}

	count, err := c.store.Count(ctx)
	if err != nil {
		return health.Unhealthy("memory storage unavailable", err)
	}

	return health.Healthy(fmt.Sprintf("memory storage operational, %d items", count))
}
