package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/matchmetric/internal/domain/seasonstats"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.statsService.GetSeasons(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, "list seasons failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonsToDTO(seasons))
}

func (h *Handler) ListSeasonHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonHistory")
	defer span.End()

	summaries, err := h.historyService.List(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, "list season history failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonSummariesToDTO(summaries))
}

func (h *Handler) GetSeasonTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonTotals")
	defer span.End()

	query, err := h.parseStatsQuery(ctx, r, h.defaultLimit)
	if err != nil {
		h.writeServiceError(ctx, w, "parse totals query failed", err)
		return
	}

	totals, err := h.statsService.GetSeasonTotals(ctx, query.Season)
	if err != nil {
		h.writeServiceError(ctx, w, "get season totals failed", err, "season_id", query.Season)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonTotalsResponseDTO{
		LeagueID: h.statsService.Scope().LeagueID,
		SeasonID: query.Season,
		Totals:   totalsToDTO(totals),
	})
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	query, err := h.parseStatsQuery(ctx, r, h.defaultLimit)
	if err != nil {
		h.writeServiceError(ctx, w, "parse leaderboard query failed", err)
		return
	}

	entries, err := h.statsService.GetTopScorers(ctx, query.Season, query.Limit)
	if err != nil {
		h.writeServiceError(ctx, w, "list top scorers failed", err, "season_id", query.Season, "limit", query.Limit)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.leaderboardResponse(seasonstats.StatGoals, query, entries))
}

func (h *Handler) ListTopAssistProviders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopAssistProviders")
	defer span.End()

	query, err := h.parseStatsQuery(ctx, r, h.defaultLimit)
	if err != nil {
		h.writeServiceError(ctx, w, "parse leaderboard query failed", err)
		return
	}

	entries, err := h.statsService.GetTopAssistProviders(ctx, query.Season, query.Limit)
	if err != nil {
		h.writeServiceError(ctx, w, "list top assist providers failed", err, "season_id", query.Season, "limit", query.Limit)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.leaderboardResponse(seasonstats.StatAssists, query, entries))
}

// GetLeaderboard is the thin read endpoint that takes the stat from the query
// string. Anything but goals or assists gets the fixed 400 message.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	rawStat := strings.TrimSpace(r.URL.Query().Get("stat"))
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard", attribute.String("matchmetric.stat", rawStat))
	defer span.End()

	if _, err := seasonstats.ParseStat(rawStat); err != nil {
		h.logger.WarnContext(ctx, "invalid leaderboard stat", "stat", rawStat)
		writeErrorMessage(ctx, w, mapError(ctx, err), invalidStatMessage)
		return
	}

	query, err := h.parseStatsQuery(ctx, r, defaultGenericLeaderboardLimit)
	if err != nil {
		h.writeServiceError(ctx, w, "parse leaderboard query failed", err)
		return
	}

	board, err := h.statsService.GetLeaderboard(ctx, rawStat, query.Season, query.Limit)
	if err != nil {
		h.writeServiceError(ctx, w, "get leaderboard failed", err, "stat", rawStat, "season_id", query.Season)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardDTO{
		LeagueID:   board.LeagueID,
		LeagueName: board.LeagueName,
		SeasonID:   board.SeasonID,
		SeasonName: board.SeasonName,
		Stat:       board.Stat.String(),
		Limit:      query.Limit,
		Rows:       leaderboardEntriesToDTO(board.Entries, board.Stat),
	})
}

func (h *Handler) leaderboardResponse(stat seasonstats.Stat, query statsQuery, entries []seasonstats.LeaderboardEntry) leaderboardDTO {
	scope := h.statsService.Scope()
	return leaderboardDTO{
		LeagueID:   scope.LeagueID,
		LeagueName: scope.LeagueName,
		SeasonID:   query.Season,
		Stat:       stat.String(),
		Limit:      query.Limit,
		Rows:       leaderboardEntriesToDTO(entries, stat),
	}
}
