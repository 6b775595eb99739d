package querybuilder

import "testing"

func TestSelectBuilder_JoinWhereOrderLimit(t *testing.T) {
	query, args, err := Select("p.player_id", "p.name", "s.goals").
		From("player_season_stats s").
		Join("players p", "p.player_id = s.player_id").
		Where(Eq("s.league_id", int64(8)), Gt("s.goals", 0)).
		OrderBy("s.goals DESC", "p.name ASC").
		Limit(25).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT p.player_id, p.name, s.goals FROM player_season_stats s JOIN players p ON p.player_id = s.player_id WHERE s.league_id = $1 AND s.goals > $2 ORDER BY s.goals DESC, p.name ASC LIMIT $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != int64(8) || args[1] != 0 || args[2] != 25 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_DistinctWithoutLimit(t *testing.T) {
	query, args, err := SelectDistinct("season_id").
		From("player_season_stats").
		Where(Eq("league_id", int64(8))).
		OrderBy("season_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT DISTINCT season_id FROM player_season_stats WHERE league_id = $1 ORDER BY season_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_Validation(t *testing.T) {
	if _, _, err := Select().From("t").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
	if _, _, err := Select("a").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
	if _, _, err := Select("a").From("t").Join("u", "").ToSQL(); err == nil {
		t.Fatalf("expected error for join without condition")
	}
}
