package config

import (
	"strconv"
	"strings"
	"time"

	"itemservice/internal/platform/database/postgres"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type DatabaseConfig struct {
	BaseConfig
	Driver   string         `envconfig:"DATABASE_DRIVER" default:"memory" validate:"oneof=memory postgres"`
	Postgres PostgresConfig `envconfig:"POSTGRES"`
}

func (c *DatabaseConfig) UsesPostgres() bool {
	return c.Driver == DriverPostgres
}

type PostgresConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            int           `envconfig:"PORT" default:"5432" validate:"min=1,max=65535"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:""`
	Database        string        `envconfig:"DB" default:"itemservice"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25" validate:"gte=0"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5" validate:"gte=0"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"5m"`
}

// DSN renders the lib/pq key/value form, quoting values that need it.
func (c *PostgresConfig) DSN() string {
	pairs := []struct{ key, value string }{
		{"host", c.Host},
		{"port", strconv.Itoa(c.Port)},
		{"user", c.User},
		{"password", c.Password},
		{"dbname", c.Database},
		{"sslmode", c.SSLMode},
	}

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.key + "=" + dsnValue(p.value)
	}
	return strings.Join(parts, " ")
}

func dsnValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v) + "'"
}

func (c *PostgresConfig) Pool() postgres.Pool {
	return postgres.Pool{
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		ConnMaxIdleTime: c.ConnMaxIdleTime,
	}
}

func LoadDatabase() (*DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
