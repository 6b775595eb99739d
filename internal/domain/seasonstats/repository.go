package seasonstats

import "context"

// Repository reads per-player season statistics. Implementations are
// read-only, mark infrastructure failures with ErrStoreUnavailable and reject
// unknown stats with ErrUnknownStat before issuing any query.
type Repository interface {
	ListSeasonIDsWithData(ctx context.Context, leagueID int64) ([]int64, error)
	ListTopByStat(ctx context.Context, leagueID, seasonID int64, stat Stat, limit int) ([]PlayerSeasonStat, error)
	GetSeasonTotals(ctx context.Context, leagueID, seasonID int64) (SeasonTotals, error)
	Ping(ctx context.Context) error
}
