package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/matchmetric/internal/domain/season"
	"github.com/riskibarqy/matchmetric/internal/domain/seasonstats"
	"go.opentelemetry.io/otel/attribute"
)

const defaultSeasonHistoryWorkers = 4

type seasonHistoryReader interface {
	GetSeasons(ctx context.Context) ([]season.Season, error)
	GetSeasonTotals(ctx context.Context, seasonID int64) (seasonstats.SeasonTotals, error)
}

// SeasonHistoryService computes totals for every catalog season that has data.
type SeasonHistoryService struct {
	stats   seasonHistoryReader
	workers int
}

func NewSeasonHistoryService(stats seasonHistoryReader, workers int) *SeasonHistoryService {
	if workers <= 0 {
		workers = defaultSeasonHistoryWorkers
	}
	return &SeasonHistoryService{stats: stats, workers: workers}
}

// List returns one summary per season with data, newest first. Any failing
// season fails the whole call.
func (s *SeasonHistoryService) List(ctx context.Context) ([]seasonstats.SeasonSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonHistoryService.List")
	defer span.End()

	seasons, err := s.stats.GetSeasons(ctx)
	if err != nil {
		return nil, err
	}

	targets := make([]season.Season, 0, len(seasons))
	for _, item := range seasons {
		if item.HasData {
			targets = append(targets, item)
		}
	}
	span.SetAttributes(attribute.Int("season_count", len(targets)))

	out := make([]seasonstats.SeasonSummary, len(targets))
	if len(targets) == 0 {
		return out, nil
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workerPool, err := ants.NewPool(min(s.workers, len(targets)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		workers  sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i, target := range targets {
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()
			if ctx.Err() != nil {
				return
			}

			totals, err := s.stats.GetSeasonTotals(ctx, target.ID)
			if err != nil {
				fail(err)
				return
			}
			out[i] = seasonstats.SeasonSummary{
				SeasonID:   target.ID,
				SeasonName: target.Name,
				Totals:     totals,
			}
		}); err != nil {
			workers.Done()
			fail(fmt.Errorf("submit season %d to worker pool: %w", target.ID, err))
			break
		}
	}

	workers.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
