package seasonstats

import (
	"fmt"
	"strings"
)

// Stat is the closed set of ranked metrics.
type Stat string

const (
	StatGoals   Stat = "goals"
	StatAssists Stat = "assists"
)

var AllStats = []Stat{StatGoals, StatAssists}

// ParseStat accepts the exact lowercase stat names only.
func ParseStat(raw string) (Stat, error) {
	switch Stat(raw) {
	case StatGoals, StatAssists:
		return Stat(raw), nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownStat, raw, statNames())
	}
}

func (s Stat) Valid() bool {
	return s == StatGoals || s == StatAssists
}

// Column is the store column backing the stat. It returns an empty string for
// an unknown stat so that no caller text ever reaches a query.
func (s Stat) Column() string {
	switch s {
	case StatGoals:
		return "goals"
	case StatAssists:
		return "assists"
	default:
		return ""
	}
}

// Value reads the stat from a row.
func (s Stat) Value(row PlayerSeasonStat) int {
	switch s {
	case StatGoals:
		return row.Goals
	case StatAssists:
		return row.Assists
	default:
		return 0
	}
}

func (s Stat) String() string {
	return string(s)
}

func statNames() string {
	names := make([]string, 0, len(AllStats))
	for _, s := range AllStats {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
