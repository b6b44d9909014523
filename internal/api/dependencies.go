package api

import (
	"os"

	"fr24/spotter/internal/common"
	"fr24/spotter/internal/db"
	"fr24/spotter/internal/db/repositories"
	"fr24/spotter/internal/logging"
	"fr24/spotter/internal/metrics"
	"fr24/spotter/internal/providers"
	"fr24/spotter/internal/services"
)

// Dependencies wires the provider chain, services and repositories once at
// startup and hands them to the handlers.
type Dependencies struct {
	Metrics *metrics.MetricsRegistry
	Cache   common.CacheInterface

	Services struct {
		Search *services.SearchService
	}

	Repo struct {
		FlightCache *repositories.FlightCacheRepository
		History     *repositories.SearchHistoryRepository
	}
}

// InitDependencies builds the dependency container. The memoization cache is
// Redis when REDIS_HOST is set, in-memory otherwise; the fallback provider
// joins the chain only when an FR24 API token is configured.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	deps := &Dependencies{Metrics: metricsReg}

	if os.Getenv("REDIS_HOST") != "" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			logging.Warn("Redis unavailable, using in-memory cache", "error", err.Error())
			deps.Cache = common.NewCacheService(60, 120)
		} else {
			logging.Info("Using Redis memoization cache")
			deps.Cache = redisCache
		}
	} else {
		deps.Cache = common.NewCacheService(60, 120)
	}

	primary := providers.NewFeedProvider(deps.Cache)
	var fallback providers.FlightProvider
	if clientProvider := providers.NewClientProvider(); clientProvider != nil {
		logging.Info("FR24 API fallback provider enabled")
		fallback = clientProvider
	}
	provider := providers.NewFailoverProvider(primary, fallback)

	deps.Services.Search = services.NewSearchService(provider, metricsReg)
	deps.Repo.FlightCache = repositories.NewFlightCacheRepository(db.CacheDB)
	deps.Repo.History = repositories.NewSearchHistoryRepository(db.HistoryDB)

	return deps, nil
}
