package seasonstats

import "sort"

// RankLeaderboard keeps rows whose stat is positive, orders them by stat
// descending, then name ascending (byte-wise), then player id ascending,
// truncates to limit and numbers the result from 1. The input is not modified.
func RankLeaderboard(rows []PlayerSeasonStat, stat Stat, limit int) []LeaderboardEntry {
	eligible := make([]PlayerSeasonStat, 0, len(rows))
	for _, row := range rows {
		if stat.Value(row) > 0 {
			eligible = append(eligible, row)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return lessForStat(stat, eligible[i], eligible[j])
	})

	if limit >= 0 && len(eligible) > limit {
		eligible = eligible[:limit]
	}

	out := make([]LeaderboardEntry, len(eligible))
	for i, row := range eligible {
		out[i] = LeaderboardEntry{PlayerSeasonStat: row, Rank: i + 1}
	}
	return out
}

func lessForStat(stat Stat, a, b PlayerSeasonStat) bool {
	av, bv := stat.Value(a), stat.Value(b)
	if av != bv {
		return av > bv
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.PlayerID < b.PlayerID
}

// Totals sums goals and assists across rows.
func Totals(rows []PlayerSeasonStat) SeasonTotals {
	var out SeasonTotals
	for _, row := range rows {
		out.TotalGoals += row.Goals
		out.TotalAssists += row.Assists
	}
	return out
}
