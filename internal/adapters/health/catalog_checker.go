package health

import (
	"context"
	"fmt"
	"itemservice/internal/platform/health"
	"strings"

	"itemservice/internal/platform/validation"
)

// CatalogChecker reports the message catalog unhealthy when it is empty or
// misses one of the required keys.
type CatalogChecker struct {
	catalog  validation.MapCatalog
	required []string
}

func NewCatalogChecker(catalog validation.MapCatalog, required ...string) *CatalogChecker {
	return &CatalogChecker{
		catalog:  catalog,
		required: required,
	}
}

const CatalogCheckerName = "message_catalog"

func (c *CatalogChecker) Name() string {
	return CatalogCheckerName
}

func (c *CatalogChecker) Check(ctx context.Context) health.CheckResult {
	if err := ctx.Err(); err != nil {
		return health.Unhealthy("catalog check cancelled", err)
	}

	if c.catalog.Len() == 0 {
		return health.Unhealthy("message catalog is empty", nil)
	}

	var missing []string
	for _, key := range c.required {
		if _, ok := c.catalog.Lookup(key); !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return health.Unhealthy("message catalog is incomplete",
			fmt.Errorf("missing keys: %s", strings.Join(missing, ", ")))
	}

	return health.Healthy(fmt.Sprintf("%d messages loaded", c.catalog.Len()))
}
