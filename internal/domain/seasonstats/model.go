package seasonstats

// PlayerSeasonStat is one player's aggregated contribution to a single
// (league, season) scope. Goals and Assists are never negative.
type PlayerSeasonStat struct {
	PlayerID int64
	Name     string
	TeamName string
	Goals    int
	Assists  int
}

type SeasonTotals struct {
	TotalGoals   int
	TotalAssists int
}

// LeaderboardEntry carries a 1-based, gap-free rank assigned by position.
type LeaderboardEntry struct {
	PlayerSeasonStat
	Rank int
}

// SeasonSummary pairs a season with its totals.
type SeasonSummary struct {
	SeasonID   int64
	SeasonName string
	Totals     SeasonTotals
}
