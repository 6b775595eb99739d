package usecase

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/riskibarqy/matchmetric/internal/domain/seasonstats"
	seasonstatsmock "github.com/riskibarqy/matchmetric/internal/mocks/domain/seasonstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryStatsRepository answers from fixed rows the way the store would.
type memoryStatsRepository struct {
	rows    map[int64][]seasonstats.PlayerSeasonStat
	queries atomic.Int32
}

func (r *memoryStatsRepository) ListSeasonIDsWithData(context.Context, int64) ([]int64, error) {
	r.queries.Add(1)
	ids := make([]int64, 0, len(r.rows))
	for id, rows := range r.rows {
		if len(rows) > 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *memoryStatsRepository) ListTopByStat(_ context.Context, _, seasonID int64, stat seasonstats.Stat, limit int) ([]seasonstats.PlayerSeasonStat, error) {
	r.queries.Add(1)
	out := make([]seasonstats.PlayerSeasonStat, 0)
	for _, row := range r.rows[seasonID] {
		if stat.Value(row) > 0 {
			out = append(out, row)
		}
	}
	// Deliberately unordered beyond the stat so ordering has to be applied upstream.
	sort.SliceStable(out, func(i, j int) bool { return stat.Value(out[i]) > stat.Value(out[j]) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryStatsRepository) GetSeasonTotals(_ context.Context, _, seasonID int64) (seasonstats.SeasonTotals, error) {
	r.queries.Add(1)
	return seasonstats.Totals(r.rows[seasonID]), nil
}

func (r *memoryStatsRepository) Ping(context.Context) error {
	return nil
}

func seededMemoryRepository() *memoryStatsRepository {
	return &memoryStatsRepository{rows: map[int64][]seasonstats.PlayerSeasonStat{
		testDefaultSeason: {
			{PlayerID: 10, Name: "Mohamed Salah", TeamName: "Liverpool", Goals: 29, Assists: 18},
			{PlayerID: 11, Name: "Alexander Isak", TeamName: "Newcastle United", Goals: 23, Assists: 6},
			{PlayerID: 12, Name: "Erling Haaland", TeamName: "Manchester City", Goals: 22, Assists: 3},
			{PlayerID: 13, Name: "Jordan Pickford", TeamName: "Everton", Goals: 0, Assists: 0},
			{PlayerID: 14, Name: "Bukayo Saka", TeamName: "Arsenal", Goals: 6, Assists: 10},
		},
		21646: {
			{PlayerID: 12, Name: "Erling Haaland", TeamName: "Manchester City", Goals: 27, Assists: 5},
			{PlayerID: 15, Name: "Ollie Watkins", TeamName: "Aston Villa", Goals: 19, Assists: 13},
		},
	}}
}

func TestDashboardService_Get(t *testing.T) {
	t.Parallel()

	repo := seededMemoryRepository()
	stats := newTestStatsService(repo)
	service := NewDashboardService(stats)

	got, err := service.Get(context.Background(), testDefaultSeason, 25)
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}

	assert.Equal(t, "Premier League", got.LeagueName)
	assert.Equal(t, "2024/2025", got.Season.Name)
	assert.True(t, got.Season.HasData)
	assert.Len(t, got.Seasons, 17)
	assert.Equal(t, seasonstats.SeasonTotals{TotalGoals: 80, TotalAssists: 37}, got.Totals)

	require.Len(t, got.TopScorers, 4)
	require.NotNil(t, got.TopScorer)
	assert.Equal(t, "Mohamed Salah", got.TopScorer.Name)
	require.NotNil(t, got.TopAssistProvider)
	assert.Equal(t, "Mohamed Salah", got.TopAssistProvider.Name)
	assert.Equal(t, int32(4), repo.queries.Load())
}

func TestDashboardService_Get_TotalsMatchLeaderboardSums(t *testing.T) {
	t.Parallel()

	repo := seededMemoryRepository()
	service := NewDashboardService(newTestStatsService(repo))

	got, err := service.Get(context.Background(), testDefaultSeason, 100)
	require.NoError(t, err)

	goals, assists := 0, 0
	for _, entry := range got.TopScorers {
		goals += entry.Goals
	}
	for _, entry := range got.TopAssistProviders {
		assists += entry.Assists
	}
	assert.Equal(t, got.Totals.TotalGoals, goals)
	assert.Equal(t, got.Totals.TotalAssists, assists)
}

func TestDashboardService_Get_EmptySeason(t *testing.T) {
	t.Parallel()

	service := NewDashboardService(newTestStatsService(seededMemoryRepository()))

	got, err := service.Get(context.Background(), 6, 25)
	require.NoError(t, err)

	assert.Empty(t, got.TopScorers)
	assert.Empty(t, got.TopAssistProviders)
	assert.Equal(t, seasonstats.SeasonTotals{}, got.Totals)
	assert.Nil(t, got.TopScorer)
	assert.False(t, got.Season.HasData)
	assert.Equal(t, "2008/2009", got.Season.Name)
}

func TestDashboardService_Get_AnyFailureFailsRequest(t *testing.T) {
	t.Parallel()

	repo := seasonstatsmock.NewRepository(t)
	service := NewDashboardService(newTestStatsService(repo))

	repo.On("ListTopByStat", mock.Anything, testLeagueID, testDefaultSeason, mock.Anything, 10).
		Return([]seasonstats.PlayerSeasonStat{}, nil).
		Maybe()
	repo.On("GetSeasonTotals", mock.Anything, testLeagueID, testDefaultSeason).
		Return(seasonstats.SeasonTotals{}, seasonstats.ErrStoreUnavailable).
		Once()
	repo.On("ListSeasonIDsWithData", mock.Anything, testLeagueID).
		Return([]int64{}, nil).
		Maybe()

	_, err := service.Get(context.Background(), testDefaultSeason, 10)
	if !errors.Is(err, seasonstats.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestDashboardService_Get_InvalidLimitIssuesNoQuery(t *testing.T) {
	t.Parallel()

	repo := seededMemoryRepository()
	service := NewDashboardService(newTestStatsService(repo))

	_, err := service.Get(context.Background(), testDefaultSeason, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	assert.Zero(t, repo.queries.Load())
}

func TestDashboardService_Overview(t *testing.T) {
	t.Parallel()

	service := NewDashboardService(newTestStatsService(seededMemoryRepository()))

	got, err := service.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 17, got.SeasonCount)
	assert.Equal(t, 2, got.SeasonsWithData)
	assert.Equal(t, "2024/2025", got.DefaultSeason.Name)
	assert.Equal(t, 80, got.Totals.TotalGoals)
}

func TestDashboardService_HasDataIsRecomputedEachCall(t *testing.T) {
	t.Parallel()

	repo := seededMemoryRepository()
	service := NewDashboardService(newTestStatsService(repo))

	first, err := service.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, first.SeasonsWithData)

	repo.rows[19734] = []seasonstats.PlayerSeasonStat{{PlayerID: 12, Name: "Erling Haaland", Goals: 36}}

	second, err := service.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, second.SeasonsWithData)
}
