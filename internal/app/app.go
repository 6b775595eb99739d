package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/matchmetric/internal/config"
	"github.com/riskibarqy/matchmetric/internal/domain/season"
	"github.com/riskibarqy/matchmetric/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/matchmetric/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchmetric/internal/platform/logging"
	"github.com/riskibarqy/matchmetric/internal/platform/resilience"
	"github.com/riskibarqy/matchmetric/internal/usecase"
)

// Services is the season statistics wiring shared by the API and the CLI.
type Services struct {
	Repository *postgres.SeasonStatsRepository
	Stats      *usecase.SeasonStatsService
	Dashboard  *usecase.DashboardService
	History    *usecase.SeasonHistoryService
}

func NewServices(cfg config.Config, db postgres.Queryer, logger *logging.Logger) *Services {
	if logger == nil {
		logger = logging.Default()
	}

	breaker := resilience.NewCircuitBreaker("statistics-db",
		resilience.CircuitBreakerConfig{
			Enabled:          cfg.DBCircuitEnabled,
			FailureThreshold: cfg.DBCircuitFailureCount,
			OpenTimeout:      cfg.DBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
		},
		resilience.WithStateChangeHook(func(name string, from, to resilience.CircuitState) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
		}),
	)

	repo := postgres.NewSeasonStatsRepository(db, cfg.DBQueryTimeout, breaker)
	stats := usecase.NewSeasonStatsService(repo, season.PremierLeague(), usecase.LeagueScope{
		LeagueID:        cfg.LeagueID,
		LeagueName:      cfg.LeagueName,
		DefaultSeasonID: cfg.DefaultSeasonID,
	}, cfg.LeaderboardMaxLimit)

	return &Services{
		Repository: repo,
		Stats:      stats,
		Dashboard:  usecase.NewDashboardService(stats),
		History:    usecase.NewSeasonHistoryService(stats, cfg.SeasonHistoryWorkers),
	}
}

func NewHTTPServer(cfg config.Config, services *Services, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(
		services.Stats,
		services.Dashboard,
		services.History,
		services.Repository,
		logger,
		cfg.LeaderboardDefaultLimit,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimit: httpapi.RateLimitConfig{
			Enabled:  cfg.RateLimitEnabled,
			Requests: cfg.RateLimitRequests,
			Window:   cfg.RateLimitWindow,
		},
	})

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
