package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchmetric/internal/domain/seasonstats"
	qb "github.com/riskibarqy/matchmetric/internal/platform/querybuilder"
	"github.com/riskibarqy/matchmetric/internal/platform/resilience"
)

const defaultQueryTimeout = 5 * time.Second

// Queryer is the subset of *sqlx.DB used by the repository.
type Queryer interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	PingContext(ctx context.Context) error
}

type SeasonStatsRepository struct {
	db           Queryer
	queryTimeout time.Duration
	breaker      *resilience.CircuitBreaker
}

// NewSeasonStatsRepository builds the repository. A nil breaker disables
// fail-fast behaviour.
func NewSeasonStatsRepository(db Queryer, queryTimeout time.Duration, breaker *resilience.CircuitBreaker) *SeasonStatsRepository {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &SeasonStatsRepository{db: db, queryTimeout: queryTimeout, breaker: breaker}
}

func (r *SeasonStatsRepository) ListSeasonIDsWithData(ctx context.Context, leagueID int64) ([]int64, error) {
	query, args, err := seasonIDsQuery(leagueID)
	if err != nil {
		return nil, crerr.Wrap(err, "build select season ids query")
	}

	var ids []int64
	err = r.run(ctx, "select season ids", func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &ids, query, args...)
	})
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

func (r *SeasonStatsRepository) ListTopByStat(ctx context.Context, leagueID, seasonID int64, stat seasonstats.Stat, limit int) ([]seasonstats.PlayerSeasonStat, error) {
	if !stat.Valid() {
		return nil, crerr.Wrapf(seasonstats.ErrUnknownStat, "list top by stat %q", string(stat))
	}
	if limit <= 0 {
		return []seasonstats.PlayerSeasonStat{}, nil
	}

	query, args, err := topByStatQuery(leagueID, seasonID, stat, limit)
	if err != nil {
		return nil, crerr.Wrapf(err, "build select top %s query", stat)
	}

	var rows []playerSeasonStatRow
	err = r.run(ctx, "select top "+stat.String(), func(ctx context.Context) error {
		return r.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, err
	}

	out := make([]seasonstats.PlayerSeasonStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonstats.PlayerSeasonStat{
			PlayerID: row.PlayerID,
			Name:     nullText(row.Name),
			TeamName: nullText(row.TeamName),
			Goals:    nullCount(row.Goals),
			Assists:  nullCount(row.Assists),
		})
	}
	return out, nil
}

func (r *SeasonStatsRepository) GetSeasonTotals(ctx context.Context, leagueID, seasonID int64) (seasonstats.SeasonTotals, error) {
	query, args, err := seasonTotalsQuery(leagueID, seasonID)
	if err != nil {
		return seasonstats.SeasonTotals{}, crerr.Wrap(err, "build select season totals query")
	}

	var row seasonTotalsRow
	err = r.run(ctx, "select season totals", func(ctx context.Context) error {
		return r.db.GetContext(ctx, &row, query, args...)
	})
	if err != nil {
		return seasonstats.SeasonTotals{}, err
	}

	return seasonstats.SeasonTotals{
		TotalGoals:   nullCount(row.TotalGoals),
		TotalAssists: nullCount(row.TotalAssists),
	}, nil
}

func (r *SeasonStatsRepository) Ping(ctx context.Context) error {
	return r.run(ctx, "ping", func(ctx context.Context) error {
		return r.db.PingContext(ctx)
	})
}

func (r *SeasonStatsRepository) run(ctx context.Context, op string, fn func(context.Context) error) error {
	queryCtx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var err error
	if r.breaker != nil {
		err = r.breaker.Do(queryCtx, fn)
	} else {
		err = fn(queryCtx)
	}
	return storeError(ctx, op, err)
}

func seasonIDsQuery(leagueID int64) (string, []any, error) {
	return qb.SelectDistinct("season_id").
		From(playerSeasonStatsTable).
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("season_id DESC").
		ToSQL()
}

// topByStatQuery orders names with the C collation so the database agrees
// with the byte-wise ordering applied in Go.
func topByStatQuery(leagueID, seasonID int64, stat seasonstats.Stat, limit int) (string, []any, error) {
	col := "s." + stat.Column()
	return qb.Select(
		"s.player_id",
		"p.name",
		"s.team_name",
		"COALESCE(s.goals, 0) AS goals",
		"COALESCE(s.assists, 0) AS assists",
	).
		From(playerSeasonStatsTable+" s").
		Join(playersTable+" p", "p.player_id = s.player_id").
		Where(
			qb.Eq("s.league_id", leagueID),
			qb.Eq("s.season_id", seasonID),
			qb.Gt(col, 0),
		).
		OrderBy(col+" DESC", `p.name COLLATE "C" ASC`, "s.player_id ASC").
		Limit(limit).
		ToSQL()
}

func seasonTotalsQuery(leagueID, seasonID int64) (string, []any, error) {
	return qb.Select(
		"COALESCE(SUM(goals), 0) AS total_goals",
		"COALESCE(SUM(assists), 0) AS total_assists",
	).
		From(playerSeasonStatsTable).
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season_id", seasonID),
		).
		ToSQL()
}
