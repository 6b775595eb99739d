package usecase

import (
	"context"

	"github.com/riskibarqy/matchmetric/internal/domain/season"
	"github.com/riskibarqy/matchmetric/internal/domain/seasonstats"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// Dashboard is everything the season dashboard renders for one season.
type Dashboard struct {
	LeagueID           int64
	LeagueName         string
	Season             season.Season
	Seasons            []season.Season
	TopScorers         []seasonstats.LeaderboardEntry
	TopAssistProviders []seasonstats.LeaderboardEntry
	Totals             seasonstats.SeasonTotals
	TopScorer          *seasonstats.LeaderboardEntry
	TopAssistProvider  *seasonstats.LeaderboardEntry
}

// Overview is the landing summary for the default season.
type Overview struct {
	LeagueID        int64
	LeagueName      string
	DefaultSeason   season.Season
	SeasonCount     int
	SeasonsWithData int
	Totals          seasonstats.SeasonTotals
}

type dashboardStatsReader interface {
	Scope() LeagueScope
	ValidateLimit(limit int) error
	GetSeasons(ctx context.Context) ([]season.Season, error)
	GetTopScorers(ctx context.Context, seasonID int64, limit int) ([]seasonstats.LeaderboardEntry, error)
	GetTopAssistProviders(ctx context.Context, seasonID int64, limit int) ([]seasonstats.LeaderboardEntry, error)
	GetSeasonTotals(ctx context.Context, seasonID int64) (seasonstats.SeasonTotals, error)
}

type DashboardService struct {
	stats dashboardStatsReader
}

func NewDashboardService(stats dashboardStatsReader) *DashboardService {
	return &DashboardService{stats: stats}
}

// Get loads the four dashboard sections concurrently. The first failure
// cancels the rest and fails the whole request.
func (s *DashboardService) Get(ctx context.Context, seasonID int64, limit int) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get", attribute.Int64("season_id", seasonID))
	defer span.End()

	if err := validateSeasonID(seasonID); err != nil {
		return Dashboard{}, err
	}
	if err := s.stats.ValidateLimit(limit); err != nil {
		return Dashboard{}, err
	}

	scope := s.stats.Scope()
	out := Dashboard{
		LeagueID:   scope.LeagueID,
		LeagueName: scope.LeagueName,
		Season:     season.Season{ID: seasonID},
	}

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		rows, err := s.stats.GetTopScorers(ctx, seasonID, limit)
		out.TopScorers = rows
		return err
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.stats.GetTopAssistProviders(ctx, seasonID, limit)
		out.TopAssistProviders = rows
		return err
	})
	p.Go(func(ctx context.Context) error {
		totals, err := s.stats.GetSeasonTotals(ctx, seasonID)
		out.Totals = totals
		return err
	})
	p.Go(func(ctx context.Context) error {
		seasons, err := s.stats.GetSeasons(ctx)
		out.Seasons = seasons
		return err
	})
	if err := p.Wait(); err != nil {
		return Dashboard{}, err
	}

	for _, item := range out.Seasons {
		if item.ID == seasonID {
			out.Season = item
			break
		}
	}
	if len(out.TopScorers) > 0 {
		top := out.TopScorers[0]
		out.TopScorer = &top
	}
	if len(out.TopAssistProviders) > 0 {
		top := out.TopAssistProviders[0]
		out.TopAssistProvider = &top
	}
	return out, nil
}

// Overview reports catalog coverage and the default season's totals.
func (s *DashboardService) Overview(ctx context.Context) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Overview")
	defer span.End()

	scope := s.stats.Scope()
	out := Overview{
		LeagueID:      scope.LeagueID,
		LeagueName:    scope.LeagueName,
		DefaultSeason: season.Season{ID: scope.DefaultSeasonID},
	}

	var seasons []season.Season
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		seasons, err = s.stats.GetSeasons(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		totals, err := s.stats.GetSeasonTotals(ctx, scope.DefaultSeasonID)
		out.Totals = totals
		return err
	})
	if err := p.Wait(); err != nil {
		return Overview{}, err
	}

	out.SeasonCount = len(seasons)
	for _, item := range seasons {
		if item.HasData {
			out.SeasonsWithData++
		}
		if item.ID == scope.DefaultSeasonID {
			out.DefaultSeason = item
		}
	}
	return out, nil
}
