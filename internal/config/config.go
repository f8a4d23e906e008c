package config

import (
	"fmt"
	"itemservice/internal/platform/logger"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

var structValidator = validator.New()

type BaseConfig struct {
	Environment string       `envconfig:"ENV" default:"development" validate:"oneof=development staging production test"`
	Logger      LoggerConfig `envconfig:"LOGGER"`
}

type LoggerConfig struct {
	Level  logger.Level  `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format logger.Format `envconfig:"FORMAT" default:"json" validate:"oneof=json text"`

	// File enables a rotated log file next to stdout when set.
	File       string `envconfig:"FILE"`
	MaxSizeMB  int    `envconfig:"MAX_SIZE_MB" default:"100" validate:"gte=1"`
	MaxBackups int    `envconfig:"MAX_BACKUPS" default:"3" validate:"gte=0"`
	MaxAgeDays int    `envconfig:"MAX_AGE_DAYS" default:"28" validate:"gte=0"`
}

func (c LoggerConfig) FileOptions() logger.FileOptions {
	return logger.FileOptions{
		Path:       c.File,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
	}
}

func LoadBase() (*BaseConfig, error) {
	var cfg BaseConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// load reads cfg from the environment and checks its validate tags.
func load(cfg any) error {
	if err := envconfig.Process("", cfg); err != nil {
		return err
	}
	if err := structValidator.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *BaseConfig) IsDevelopment() bool {
	return strings.ToLower(c.Environment) == EnvDevelopment
}

func (c *BaseConfig) IsProduction() bool {
	return strings.ToLower(c.Environment) == EnvProduction
}

func (c *BaseConfig) IsStaging() bool {
	return strings.ToLower(c.Environment) == EnvStaging
}

func (c *BaseConfig) IsTest() bool {
	return strings.ToLower(c.Environment) == EnvTest
}
