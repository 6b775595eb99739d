package httpapi

import (
	"github.com/riskibarqy/matchmetric/internal/domain/season"
	"github.com/riskibarqy/matchmetric/internal/domain/seasonstats"
	"github.com/riskibarqy/matchmetric/internal/usecase"
)

type seasonDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	HasData bool   `json:"has_data"`
}

type seasonTotalsDTO struct {
	TotalGoals   int `json:"total_goals"`
	TotalAssists int `json:"total_assists"`
}

type seasonTotalsResponseDTO struct {
	LeagueID int64           `json:"league_id"`
	SeasonID int64           `json:"season_id"`
	Totals   seasonTotalsDTO `json:"totals"`
}

type seasonSummaryDTO struct {
	SeasonID   int64           `json:"season_id"`
	SeasonName string          `json:"season_name"`
	Totals     seasonTotalsDTO `json:"totals"`
}

type leaderboardEntryDTO struct {
	Rank        int    `json:"rank"`
	PlayerID    int64  `json:"player_id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	ShortName   string `json:"short_name"`
	TeamName    string `json:"team_name"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	Value       int    `json:"value"`
}

type leaderboardDTO struct {
	LeagueID   int64                 `json:"league_id"`
	LeagueName string                `json:"league_name"`
	SeasonID   int64                 `json:"season_id"`
	SeasonName string                `json:"season_name,omitempty"`
	Stat       string                `json:"stat"`
	Limit      int                   `json:"limit"`
	Rows       []leaderboardEntryDTO `json:"rows"`
}

type dashboardDTO struct {
	LeagueID           int64                 `json:"league_id"`
	LeagueName         string                `json:"league_name"`
	Season             seasonDTO             `json:"season"`
	Seasons            []seasonDTO           `json:"seasons"`
	Totals             seasonTotalsDTO       `json:"totals"`
	TopScorers         []leaderboardEntryDTO `json:"top_scorers"`
	TopAssistProviders []leaderboardEntryDTO `json:"top_assist_providers"`
	TopScorer          *leaderboardEntryDTO  `json:"top_scorer"`
	TopAssistProvider  *leaderboardEntryDTO  `json:"top_assist_provider"`
}

type overviewDTO struct {
	LeagueID        int64           `json:"league_id"`
	LeagueName      string          `json:"league_name"`
	DefaultSeason   seasonDTO       `json:"default_season"`
	SeasonCount     int             `json:"season_count"`
	SeasonsWithData int             `json:"seasons_with_data"`
	Totals          seasonTotalsDTO `json:"totals"`
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{ID: v.ID, Name: v.Name, HasData: v.HasData}
}

func seasonsToDTO(items []season.Season) []seasonDTO {
	out := make([]seasonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonToDTO(item))
	}
	return out
}

func totalsToDTO(v seasonstats.SeasonTotals) seasonTotalsDTO {
	return seasonTotalsDTO{TotalGoals: v.TotalGoals, TotalAssists: v.TotalAssists}
}

func leaderboardEntryToDTO(v seasonstats.LeaderboardEntry, stat seasonstats.Stat) leaderboardEntryDTO {
	return leaderboardEntryDTO{
		Rank:        v.Rank,
		PlayerID:    v.PlayerID,
		Name:        v.Name,
		DisplayName: seasonstats.DisplayName(v.Name),
		ShortName:   seasonstats.ShortName(v.Name),
		TeamName:    v.TeamName,
		Goals:       v.Goals,
		Assists:     v.Assists,
		Value:       stat.Value(v.PlayerSeasonStat),
	}
}

// leaderboardEntriesToDTO never returns nil so empty boards encode as [].
func leaderboardEntriesToDTO(items []seasonstats.LeaderboardEntry, stat seasonstats.Stat) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, leaderboardEntryToDTO(item, stat))
	}
	return out
}

func highlightToDTO(v *seasonstats.LeaderboardEntry, stat seasonstats.Stat) *leaderboardEntryDTO {
	if v == nil {
		return nil
	}
	dto := leaderboardEntryToDTO(*v, stat)
	return &dto
}

func dashboardToDTO(v usecase.Dashboard) dashboardDTO {
	return dashboardDTO{
		LeagueID:           v.LeagueID,
		LeagueName:         v.LeagueName,
		Season:             seasonToDTO(v.Season),
		Seasons:            seasonsToDTO(v.Seasons),
		Totals:             totalsToDTO(v.Totals),
		TopScorers:         leaderboardEntriesToDTO(v.TopScorers, seasonstats.StatGoals),
		TopAssistProviders: leaderboardEntriesToDTO(v.TopAssistProviders, seasonstats.StatAssists),
		TopScorer:          highlightToDTO(v.TopScorer, seasonstats.StatGoals),
		TopAssistProvider:  highlightToDTO(v.TopAssistProvider, seasonstats.StatAssists),
	}
}

func overviewToDTO(v usecase.Overview) overviewDTO {
	return overviewDTO{
		LeagueID:        v.LeagueID,
		LeagueName:      v.LeagueName,
		DefaultSeason:   seasonToDTO(v.DefaultSeason),
		SeasonCount:     v.SeasonCount,
		SeasonsWithData: v.SeasonsWithData,
		Totals:          totalsToDTO(v.Totals),
	}
}

func seasonSummariesToDTO(items []seasonstats.SeasonSummary) []seasonSummaryDTO {
	out := make([]seasonSummaryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonSummaryDTO{
			SeasonID:   item.SeasonID,
			SeasonName: item.SeasonName,
			Totals:     totalsToDTO(item.Totals),
		})
	}
	return out
}
