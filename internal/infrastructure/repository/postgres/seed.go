package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchmetric/internal/domain/seasonstats"
)

// SeedPlayerSeasonStats is the sample scope loaded into an empty database for
// local development.
func SeedPlayerSeasonStats() []seasonstats.PlayerSeasonStat {
	return []seasonstats.PlayerSeasonStat{
		{PlayerID: 1001, Name: "Bob", TeamName: "Arsenal", Goals: 5, Assists: 1},
		{PlayerID: 1002, Name: "Amy", TeamName: "Chelsea", Goals: 5, Assists: 0},
		{PlayerID: 1003, Name: "Dominic Calvert-Lewin", TeamName: "Everton", Goals: 3, Assists: 2},
		{PlayerID: 1004, Name: "Zed", TeamName: "Fulham", Goals: 0, Assists: 0},
	}
}

// SeedScope names the league and season the sample rows are written under.
type SeedScope struct {
	LeagueID   int64
	LeagueName string
	SeasonID   int64
	SeasonName string
}

// BootstrapSeed loads SeedPlayerSeasonStats into scope when the statistics
// table holds no rows at all. It reports whether anything was written.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, scope SeedScope) (bool, error) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM `+playerSeasonStatsTable); err != nil {
		return false, fmt.Errorf("count season stats for bootstrap seed: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	sqlQuery, args, err := sqlx.Named(`
INSERT INTO leagues (league_id, name)
VALUES (:league_id, :name)
ON CONFLICT (league_id) DO NOTHING`, map[string]any{
		"league_id": scope.LeagueID,
		"name":      scope.LeagueName,
	})
	if err != nil {
		return false, fmt.Errorf("bind seed league %d query: %w", scope.LeagueID, err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
		return false, fmt.Errorf("seed league %d: %w", scope.LeagueID, err)
	}

	sqlQuery, args, err = sqlx.Named(`
INSERT INTO seasons (season_id, league_id, name)
VALUES (:season_id, :league_id, :name)
ON CONFLICT (season_id) DO NOTHING`, map[string]any{
		"season_id": scope.SeasonID,
		"league_id": scope.LeagueID,
		"name":      scope.SeasonName,
	})
	if err != nil {
		return false, fmt.Errorf("bind seed season %d query: %w", scope.SeasonID, err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
		return false, fmt.Errorf("seed season %d: %w", scope.SeasonID, err)
	}

	for _, p := range SeedPlayerSeasonStats() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (player_id, name)
VALUES (:player_id, :name)
ON CONFLICT (player_id) DO NOTHING`, map[string]any{
			"player_id": p.PlayerID,
			"name":      p.Name,
		})
		if err != nil {
			return false, fmt.Errorf("bind seed player %d query: %w", p.PlayerID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return false, fmt.Errorf("seed player %d: %w", p.PlayerID, err)
		}

		sqlQuery, args, err = sqlx.Named(`
INSERT INTO player_season_stats (league_id, season_id, player_id, team_name, goals, assists)
VALUES (:league_id, :season_id, :player_id, :team_name, :goals, :assists)
ON CONFLICT (league_id, season_id, player_id) DO NOTHING`, map[string]any{
			"league_id": scope.LeagueID,
			"season_id": scope.SeasonID,
			"player_id": p.PlayerID,
			"team_name": p.TeamName,
			"goals":     p.Goals,
			"assists":   p.Assists,
		})
		if err != nil {
			return false, fmt.Errorf("bind seed season stat %d query: %w", p.PlayerID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return false, fmt.Errorf("seed season stat %d: %w", p.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed tx: %w", err)
	}

	return true, nil
}
