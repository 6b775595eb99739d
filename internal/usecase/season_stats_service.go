package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchmetric/internal/domain/season"
	"github.com/riskibarqy/matchmetric/internal/domain/seasonstats"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultMaxLimit = 100

// LeagueScope fixes the league every query is scoped to.
type LeagueScope struct {
	LeagueID        int64
	LeagueName      string
	DefaultSeasonID int64
}

// Leaderboard is a ranked list together with the scope it was computed for.
type Leaderboard struct {
	LeagueID   int64
	LeagueName string
	SeasonID   int64
	SeasonName string
	Stat       seasonstats.Stat
	Entries    []seasonstats.LeaderboardEntry
}

type SeasonStatsService struct {
	repo     seasonstats.Repository
	catalog  *season.Catalog
	scope    LeagueScope
	maxLimit int
}

func NewSeasonStatsService(repo seasonstats.Repository, catalog *season.Catalog, scope LeagueScope, maxLimit int) *SeasonStatsService {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &SeasonStatsService{
		repo:     repo,
		catalog:  catalog,
		scope:    scope,
		maxLimit: maxLimit,
	}
}

func (s *SeasonStatsService) Scope() LeagueScope {
	return s.scope
}

func (s *SeasonStatsService) MaxLimit() int {
	return s.maxLimit
}

// ResolveSeasonID maps an omitted season (zero) to fallback. Negative ids are
// rejected.
func ResolveSeasonID(requested, fallback int64) (int64, error) {
	if requested < 0 {
		return 0, fmt.Errorf("%w: season id must be positive", ErrInvalidInput)
	}
	if requested == 0 {
		return fallback, nil
	}
	return requested, nil
}

// GetSeasons returns the catalog in its fixed order, with HasData computed
// from the store on every call.
func (s *SeasonStatsService) GetSeasons(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.GetSeasons")
	defer span.End()

	ids, err := s.repo.ListSeasonIDsWithData(ctx, s.scope.LeagueID)
	if err != nil {
		return nil, err
	}

	withData := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		withData[id] = struct{}{}
	}

	seasons := s.catalog.List()
	for i := range seasons {
		_, seasons[i].HasData = withData[seasons[i].ID]
	}
	return seasons, nil
}

func (s *SeasonStatsService) GetTopScorers(ctx context.Context, seasonID int64, limit int) ([]seasonstats.LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.GetTopScorers", attribute.Int64("season_id", seasonID))
	defer span.End()

	return s.topByStat(ctx, seasonstats.StatGoals, seasonID, limit)
}

func (s *SeasonStatsService) GetTopAssistProviders(ctx context.Context, seasonID int64, limit int) ([]seasonstats.LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.GetTopAssistProviders", attribute.Int64("season_id", seasonID))
	defer span.End()

	return s.topByStat(ctx, seasonstats.StatAssists, seasonID, limit)
}

// GetLeaderboard ranks by a caller-supplied stat name. Names outside the
// closed stat set are rejected before the store is touched.
func (s *SeasonStatsService) GetLeaderboard(ctx context.Context, rawStat string, seasonID int64, limit int) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.GetLeaderboard",
		attribute.String("stat", rawStat),
		attribute.Int64("season_id", seasonID),
	)
	defer span.End()

	stat, err := seasonstats.ParseStat(rawStat)
	if err != nil {
		return Leaderboard{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	entries, err := s.topByStat(ctx, stat, seasonID, limit)
	if err != nil {
		return Leaderboard{}, err
	}

	out := Leaderboard{
		LeagueID:   s.scope.LeagueID,
		LeagueName: s.scope.LeagueName,
		SeasonID:   seasonID,
		Stat:       stat,
		Entries:    entries,
	}
	if item, ok := s.catalog.Find(seasonID); ok {
		out.SeasonName = item.Name
	}
	return out, nil
}

func (s *SeasonStatsService) GetSeasonTotals(ctx context.Context, seasonID int64) (seasonstats.SeasonTotals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonStatsService.GetSeasonTotals", attribute.Int64("season_id", seasonID))
	defer span.End()

	if err := validateSeasonID(seasonID); err != nil {
		return seasonstats.SeasonTotals{}, err
	}
	return s.repo.GetSeasonTotals(ctx, s.scope.LeagueID, seasonID)
}

// ValidateLimit reports whether limit is within 1..MaxLimit.
func (s *SeasonStatsService) ValidateLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be > 0", ErrInvalidInput)
	}
	if limit > s.maxLimit {
		return fmt.Errorf("%w: limit must be <= %d", ErrInvalidInput, s.maxLimit)
	}
	return nil
}

func (s *SeasonStatsService) topByStat(ctx context.Context, stat seasonstats.Stat, seasonID int64, limit int) ([]seasonstats.LeaderboardEntry, error) {
	if err := validateSeasonID(seasonID); err != nil {
		return nil, err
	}
	if err := s.ValidateLimit(limit); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListTopByStat(ctx, s.scope.LeagueID, seasonID, stat, limit)
	if err != nil {
		return nil, err
	}

	// Ordering and ranks are enforced here regardless of what the store returned.
	return seasonstats.RankLeaderboard(rows, stat, limit), nil
}

func validateSeasonID(seasonID int64) error {
	if seasonID <= 0 {
		return fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	return nil
}
