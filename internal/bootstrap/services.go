package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/redis/go-redis/v9"

	"github.com/pricepulse/pricepulse-api/config"
	"github.com/pricepulse/pricepulse-api/internal/adapters/browser"
	"github.com/pricepulse/pricepulse-api/internal/core"
	"github.com/pricepulse/pricepulse-api/internal/data"
	"github.com/pricepulse/pricepulse-api/internal/service"
	"github.com/pricepulse/pricepulse-api/internal/strategy"
)

// ServiceDeps contains the shared dependencies required to build services.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient // nil when Redis is disabled
	Logger      *slog.Logger
}

// ServiceContainer holds the constructed application services.
type ServiceContainer struct {
	Ingestion *service.IngestionService
	Retailers *service.RetailerService
}

// NewServices wires repositories, strategies, and services from shared
// dependencies.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	configRepo := data.NewIngestionConfigRepo(deps.DB)
	retailerRepo := data.NewRetailerRepo(deps.DB)
	itemRepo := data.NewRetailerItemRepo(deps.DB)

	var locks core.RunLockRepository
	if deps.RedisClient != nil {
		locks = data.NewRedisRunLockRepo(deps.RedisClient)
	}

	registry := buildStrategyRegistry(strategyDeps{
		Config: deps.Config,
		Items:  itemRepo,
		Logger: logger,
	})

	ingestion := service.NewIngestionService(service.IngestionServiceOptions{
		Configs:    configRepo,
		Retailers:  retailerRepo,
		Strategies: registry,
		Locks:      locks,
		Logger:     logger,
		RunLockTTL: deps.Config.Ingest.RunLockTTL,
	})
	retailers := service.NewRetailerService(service.RetailerServiceOptions{
		Retailers: retailerRepo,
		Items:     itemRepo,
	})

	return ServiceContainer{
		Ingestion: ingestion,
		Retailers: retailers,
	}
}

type strategyDeps struct {
	Config *config.AppConfig
	Items  core.RetailerItemRepository
	Logger *slog.Logger
}

// buildStrategyRegistry registers every strategy implementation shipped
// with this binary. New acquisition strategies are wired here.
func buildStrategyRegistry(deps strategyDeps) *strategy.Registry {
	registry := strategy.NewRegistry()

	chrome := browser.NewChromeProvider(browser.ChromeProviderOptions{
		Config: deps.Config.Scraper,
		Logger: deps.Logger,
	})
	registry.Register(strategy.NewScraperStrategy(strategy.ScraperStrategyOptions{
		Browser:         chrome,
		Items:           deps.Items,
		Logger:          deps.Logger,
		SelectorTimeout: deps.Config.Scraper.SelectorTimeout,
	}))

	apiClient := resty.New().SetTimeout(deps.Config.Ingest.APIRequestTimeout)
	registry.Register(strategy.NewAPIStrategy(strategy.APIStrategyOptions{
		Items:  deps.Items,
		Client: apiClient,
		Logger: deps.Logger,
	}))

	return registry
}
