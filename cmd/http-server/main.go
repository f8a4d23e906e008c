package main

import (
	"fmt"
	"os"
	"time"

	"itemservice/internal/adapters/catalog"
	"itemservice/internal/adapters/database"
	"itemservice/internal/adapters/health"
	httpAdapter "itemservice/internal/adapters/http"
	healthHttp "itemservice/internal/adapters/http/health"
	itemHandler "itemservice/internal/adapters/http/item"
	messageHandler "itemservice/internal/adapters/http/message"
	memoryRepo "itemservice/internal/adapters/repository/memory"
	postgresRepo "itemservice/internal/adapters/repository/postgres"
	"itemservice/internal/adapters/validator"
	"itemservice/internal/config"
	"itemservice/internal/core/domain/item"
	"itemservice/internal/core/ports"
	itemUseCase "itemservice/internal/core/usecase/item"
	platformHealth "itemservice/internal/platform/health"
	"itemservice/internal/platform/logger"
	"itemservice/internal/platform/metrics"
	"itemservice/internal/platform/validation"
	"itemservice/internal/version"

	"go.uber.org/fx"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fx.New(appModule).Run()
}

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadBase),
	fx.Provide(config.LoadHttp),
	fx.Provide(config.LoadDatabase),
	fx.Provide(config.LoadValidation),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return logger.Config{
			Environment: cfg.Environment,
			Level:       cfg.Logger.Level,
			Format:      cfg.Logger.Format,
			File:        cfg.Logger.FileOptions(),
		}
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Provide(func(cfg *config.DatabaseConfig, log logger.Logger) *database.Lifecycle {
		return database.NewDatabaseLifecycle(cfg, log).WithMigrations(postgresRepo.Schema...)
	}),

	// Validation
	fx.Provide(catalog.New),
	fx.Provide(func(cfg *config.ValidationConfig, messages validation.MapCatalog) *validation.MessageResolver {
		return validation.NewMessageResolver(messages, validation.DefaultCodesResolver{Prefix: cfg.CatalogPrefix})
	}),
	fx.Provide(func(cfg *config.ValidationConfig) *item.Validator {
		return item.NewValidator(item.Rules{
			PriceMin:      cfg.Item.PriceMin,
			PriceMax:      cfg.Item.PriceMax,
			QuantityMax:   cfg.Item.QuantityMax,
			TotalPriceMin: cfg.Item.TotalPriceMin,
		})
	}),
	fx.Provide(fx.Annotate(
		func(itemValidator *item.Validator) *validation.Registry {
			registry := validation.NewRegistry()
			validation.Register[*item.Item](registry, itemValidator)
			return registry
		},
		fx.As(new(itemUseCase.ValidatorRegistry)),
	)),

	// Health Checks
	fx.Provide(fx.Annotate(
		newHealthCheckers,
		fx.ResultTags(`group:"health_checkers,flatten"`),
	)),
	fx.Provide(fx.Annotate(
		func(cfg *config.HttpConfig, checkers []platformHealth.Checker) *platformHealth.Manager {
			m := platformHealth.NewManagerWithTimeout(seconds(cfg.Health.CheckTimeout))
			for _, checker := range checkers {
				m.Register(checker)
			}
			return m
		},
		fx.ParamTags(``, `group:"health_checkers"`),
		fx.As(new(platformHealth.ManagerInterface)),
	)),

	// HTTP Server
	fx.Provide(metrics.NewProvider),
	fx.Provide(func(p *metrics.Provider) itemHandler.ValidationRecorder { return p }),
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(itemHandler.NewHandler),
	fx.Provide(messageHandler.NewHandler),
	fx.Provide(version.Info),
	fx.Provide(healthHttp.NewLivenessHandler),
	fx.Provide(func(cfg *config.HttpConfig, build version.BuildInfo, hm platformHealth.ManagerInterface) *healthHttp.ReadinessHandler {
		return healthHttp.NewReadinessHandler(build, hm,
			healthHttp.WithTimeout(seconds(cfg.Health.ReadinessTimeout)),
			healthHttp.WithComponentTypes(map[string]string{
				health.CatalogCheckerName: healthHttp.ComponentSystem,
				health.MemoryCheckerName:  healthHttp.ComponentDatastore,
				postgresCheckerName:       healthHttp.ComponentDatastore,
			}))
	}),
	fx.Provide(func(
		cfg *config.HttpConfig,
		log logger.Logger,
		items *itemHandler.Handler,
		messages *messageHandler.Handler,
		liveness *healthHttp.LivenessHandler,
		readiness *healthHttp.ReadinessHandler,
		metrics *metrics.Provider,
	) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:           cfg,
			Logger:           log,
			ItemHandler:      items,
			MessageHandler:   messages,
			LivenessHandler:  liveness,
			ReadinessHandler: readiness,
			MetricsProvider:  metrics,
		}
	}),

	// Domain
	fx.Provide(newItemRepository),
	fx.Provide(fx.Annotate(itemUseCase.NewUsecase, fx.As(new(itemHandler.Manager)))),

	// Lifecycle Hooks
	fx.Invoke(func(lc fx.Lifecycle, cfg *config.DatabaseConfig, build version.BuildInfo, db *database.Lifecycle, srv *httpAdapter.Server, log logger.Logger) {
		log.Info("Starting item service",
			logger.String("version", build.Version),
			logger.String("commit", build.GitCommit),
			logger.String("storage", cfg.Driver))

		if cfg.UsesPostgres() {
			lc.Append(fx.Hook{
				OnStart: db.Start,
				OnStop:  db.Stop,
			})
		}
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
	}),
)

const postgresCheckerName = "postgres"

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func newItemRepository(cfg *config.DatabaseConfig, db *database.Lifecycle) ports.ItemRepository {
	if cfg.UsesPostgres() {
		return postgresRepo.NewItemRepository(db)
	}
	return memoryRepo.NewItemRepository()
}

// newHealthCheckers picks the storage checker matching the configured driver.
func newHealthCheckers(
	cfg *config.DatabaseConfig,
	validationCfg *config.ValidationConfig,
	db *database.Lifecycle,
	repo ports.ItemRepository,
	messages validation.MapCatalog,
) []platformHealth.Checker {
	checkers := []platformHealth.Checker{
		health.NewCatalogChecker(messages,
			validationCfg.CatalogPrefix+validation.CodeTypeMismatch,
			validationCfg.CatalogPrefix+item.CodeRequired,
		),
	}

	if cfg.UsesPostgres() {
		return append(checkers, health.NewDatabaseChecker(db, postgresCheckerName, "items"))
	}
	if counter, ok := repo.(health.Counter); ok {
		checkers = append(checkers, health.NewMemoryChecker(counter))
	}
	return checkers
}
