package postgres

import "database/sql"

const (
	playerSeasonStatsTable = "player_season_stats"
	playersTable           = "players"
)

type playerSeasonStatRow struct {
	PlayerID int64          `db:"player_id"`
	Name     sql.NullString `db:"name"`
	TeamName sql.NullString `db:"team_name"`
	Goals    sql.NullInt64  `db:"goals"`
	Assists  sql.NullInt64  `db:"assists"`
}

type seasonTotalsRow struct {
	TotalGoals   sql.NullInt64 `db:"total_goals"`
	TotalAssists sql.NullInt64 `db:"total_assists"`
}
