package seasonstats

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankLeaderboard_AmyBobScenario(t *testing.T) {
	rows := []PlayerSeasonStat{
		{PlayerID: 1, Name: "Bob", Goals: 5},
		{PlayerID: 2, Name: "Amy", Goals: 5},
		{PlayerID: 3, Name: "Cid", Goals: 7},
	}

	got := RankLeaderboard(rows, StatGoals, 2)

	require.Len(t, got, 2)
	assert.Equal(t, "Cid", got[0].Name)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, "Amy", got[1].Name)
	assert.Equal(t, 2, got[1].Rank)
}

func TestRankLeaderboard_ZeroFloorAndEligibility(t *testing.T) {
	rows := []PlayerSeasonStat{
		{PlayerID: 1, Name: "Keeper", Goals: 0, Assists: 2},
		{PlayerID: 2, Name: "Striker", Goals: 9, Assists: 0},
	}

	goals := RankLeaderboard(rows, StatGoals, 10)
	require.Len(t, goals, 1)
	assert.Equal(t, "Striker", goals[0].Name)

	assists := RankLeaderboard(rows, StatAssists, 10)
	require.Len(t, assists, 1)
	assert.Equal(t, "Keeper", assists[0].Name)
}

func TestRankLeaderboard_TieBreakIsByteWiseThenPlayerID(t *testing.T) {
	rows := []PlayerSeasonStat{
		{PlayerID: 9, Name: "amy", Assists: 3},
		{PlayerID: 5, Name: "Zed", Assists: 3},
		{PlayerID: 7, Name: "Amy", Assists: 3},
		{PlayerID: 4, Name: "Amy", Assists: 3},
	}

	got := RankLeaderboard(rows, StatAssists, 10)

	ids := make([]int64, 0, len(got))
	for _, entry := range got {
		ids = append(ids, entry.PlayerID)
	}
	assert.Equal(t, []int64{4, 7, 5, 9}, ids)
}

func TestRankLeaderboard_PropertiesHoldForShuffledInput(t *testing.T) {
	base := make([]PlayerSeasonStat, 0, 60)
	for i := 0; i < 60; i++ {
		base = append(base, PlayerSeasonStat{
			PlayerID: int64(i + 1),
			Name:     string(rune('A' + i%26)),
			Goals:    i % 7,
			Assists:  (i * 3) % 5,
		})
	}
	want := RankLeaderboard(base, StatGoals, 25)

	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		shuffled := append([]PlayerSeasonStat(nil), base...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := RankLeaderboard(shuffled, StatGoals, 25)
		require.Equal(t, want, got, "ranking must not depend on input order")
	}

	require.LessOrEqual(t, len(want), 25)
	for i, entry := range want {
		assert.Equal(t, i+1, entry.Rank)
		assert.Positive(t, entry.Goals)
		if i > 0 {
			assert.GreaterOrEqual(t, want[i-1].Goals, entry.Goals)
		}
	}
}

func TestRankLeaderboard_EmptyAndZeroLimit(t *testing.T) {
	assert.Empty(t, RankLeaderboard(nil, StatGoals, 10))
	assert.NotNil(t, RankLeaderboard(nil, StatGoals, 10))
	assert.Empty(t, RankLeaderboard([]PlayerSeasonStat{{PlayerID: 1, Goals: 1}}, StatGoals, 0))
}

func TestTotals(t *testing.T) {
	rows := []PlayerSeasonStat{
		{Goals: 3, Assists: 1},
		{Goals: 0, Assists: 4},
	}
	assert.Equal(t, SeasonTotals{TotalGoals: 3, TotalAssists: 5}, Totals(rows))
	assert.Equal(t, SeasonTotals{}, Totals(nil))
}

func TestParseStat(t *testing.T) {
	for _, raw := range []string{"goals", "assists"} {
		stat, err := ParseStat(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, stat.Column())
		assert.True(t, stat.Valid())
	}

	for _, raw := range []string{"", "Goals", "minutes", "goals;DROP TABLE players"} {
		_, err := ParseStat(raw)
		assert.True(t, errors.Is(err, ErrUnknownStat), raw)
	}

	assert.Empty(t, Stat("minutes").Column())
	assert.Zero(t, Stat("minutes").Value(PlayerSeasonStat{Goals: 3}))
}
