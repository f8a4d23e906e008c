package health

import (
	"context"
	"fmt"
	"itemservice/internal/platform/health"

	"itemservice/internal/adapters/database"
)

type DatabaseChecker struct {
	db     *database.Lifecycle
	name   string
	tables []string
}

// NewDatabaseChecker pings the connection and, when tables are given,
// verifies each of them exists.
func NewDatabaseChecker(db *database.Lifecycle, name string, tables ...string) *DatabaseChecker {
	return &DatabaseChecker{
		db:     db,
		name:   name,
		tables: tables,
	}
}

func (c *DatabaseChecker) Name() string {
	return c.name
}

func (c *DatabaseChecker) Check(ctx context.Context) health.CheckResult {
	db := c.db.Connection()
	if db == nil {
		return health.Unhealthy("database connection is not initialized", nil)
	}

	if err := db.Ping(ctx); err != nil {
		return health.Unhealthy("database connection failed", err)
	}

	for _, table := range c.tables {
		var exists bool
		err := db.QueryRowContext(ctx, `SELECT to_regclass($1) IS NOT NULL`, table).Scan(&exists)
		if err != nil {
			return health.Unhealthy("schema check failed", err)
		}
		if !exists {
			return health.Unhealthy(fmt.Sprintf("table %s is missing", table), nil)
		}
	}

	return health.Healthy("database connection healthy")
}
