package httpapi

import "net/http"

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	query, err := h.parseStatsQuery(ctx, r, h.defaultLimit)
	if err != nil {
		h.writeServiceError(ctx, w, "parse dashboard query failed", err)
		return
	}

	dashboard, err := h.dashboardService.Get(ctx, query.Season, query.Limit)
	if err != nil {
		h.writeServiceError(ctx, w, "get dashboard failed", err, "season_id", query.Season, "limit", query.Limit)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	overview, err := h.dashboardService.Overview(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, "get overview failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(overview))
}
