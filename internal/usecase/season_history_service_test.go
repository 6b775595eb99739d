package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchmetric/internal/domain/seasonstats"
	seasonstatsmock "github.com/riskibarqy/matchmetric/internal/mocks/domain/seasonstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeasonHistoryService_List(t *testing.T) {
	t.Parallel()

	repo := seededMemoryRepository()
	service := NewSeasonHistoryService(newTestStatsService(repo), 3)

	got, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("list season history: %v", err)
	}

	require.Len(t, got, 2)
	assert.Equal(t, seasonstats.SeasonSummary{
		SeasonID:   testDefaultSeason,
		SeasonName: "2024/2025",
		Totals:     seasonstats.SeasonTotals{TotalGoals: 80, TotalAssists: 37},
	}, got[0])
	assert.Equal(t, int64(21646), got[1].SeasonID)
	assert.Equal(t, 46, got[1].Totals.TotalGoals)
}

func TestSeasonHistoryService_List_NoSeasonsWithData(t *testing.T) {
	t.Parallel()

	repo := &memoryStatsRepository{rows: map[int64][]seasonstats.PlayerSeasonStat{}}
	service := NewSeasonHistoryService(newTestStatsService(repo), 0)

	got, err := service.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSeasonHistoryService_List_FailureFailsRequest(t *testing.T) {
	t.Parallel()

	repo := seasonstatsmock.NewRepository(t)
	service := NewSeasonHistoryService(newTestStatsService(repo), 2)

	repo.On("ListSeasonIDsWithData", mock.Anything, testLeagueID).
		Return([]int64{23614, 21646, 19734}, nil).
		Once()
	repo.On("GetSeasonTotals", mock.Anything, testLeagueID, int64(21646)).
		Return(seasonstats.SeasonTotals{}, seasonstats.ErrStoreUnavailable).
		Maybe()
	repo.On("GetSeasonTotals", mock.Anything, testLeagueID, mock.Anything).
		Return(seasonstats.SeasonTotals{TotalGoals: 1}, nil).
		Maybe()

	_, err := service.List(context.Background())
	if !errors.Is(err, seasonstats.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
