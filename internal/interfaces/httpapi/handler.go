package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchmetric/internal/domain/seasonstats"
	"github.com/riskibarqy/matchmetric/internal/platform/logging"
	"github.com/riskibarqy/matchmetric/internal/usecase"
)

const (
	defaultLeaderboardLimit        = 25
	defaultGenericLeaderboardLimit = 10

	invalidStatMessage = "Invalid stat. Use ?stat=goals or ?stat=assists"
)

// ReadinessChecker reports whether the statistics store answers.
type ReadinessChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	statsService     *usecase.SeasonStatsService
	dashboardService *usecase.DashboardService
	historyService   *usecase.SeasonHistoryService
	readiness        ReadinessChecker
	logger           *logging.Logger
	validator        *validator.Validate
	defaultLimit     int
}

func NewHandler(
	statsService *usecase.SeasonStatsService,
	dashboardService *usecase.DashboardService,
	historyService *usecase.SeasonHistoryService,
	readiness ReadinessChecker,
	logger *logging.Logger,
	defaultLimit int,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if defaultLimit <= 0 {
		defaultLimit = defaultLeaderboardLimit
	}

	return &Handler{
		statsService:     statsService,
		dashboardService: dashboardService,
		historyService:   historyService,
		readiness:        readiness,
		logger:           logger,
		validator:        validator.New(),
		defaultLimit:     defaultLimit,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Readyz")
	defer span.End()

	if h.readiness != nil {
		if err := h.readiness.Ping(ctx); err != nil {
			h.logger.WarnContext(ctx, "readiness check failed", "error", err)
			writeError(ctx, w, err)
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ready"})
}

// statsQuery is the shared query string of every read route. Zero Season
// means the caller omitted it; an explicit season must be positive.
type statsQuery struct {
	Season int64 `validate:"gte=0"`
	Limit  int   `validate:"gte=1"`
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// parseStatsQuery reads season and limit from the query string and resolves
// an omitted season to the configured default. An explicit ?season=0 is
// rejected rather than treated as omitted.
func (h *Handler) parseStatsQuery(ctx context.Context, r *http.Request, defaultLimit int) (statsQuery, error) {
	values := r.URL.Query()
	out := statsQuery{Limit: defaultLimit}

	if raw := strings.TrimSpace(values.Get("season")); raw != "" {
		season, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return statsQuery{}, fmt.Errorf("%w: season must be an integer", usecase.ErrInvalidInput)
		}
		if season <= 0 {
			return statsQuery{}, fmt.Errorf("%w: season must be a positive integer", usecase.ErrInvalidInput)
		}
		out.Season = season
	}
	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return statsQuery{}, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput)
		}
		out.Limit = limit
	}

	if err := h.validateRequest(ctx, out); err != nil {
		return statsQuery{}, err
	}

	season, err := usecase.ResolveSeasonID(out.Season, h.statsService.Scope().DefaultSeasonID)
	if err != nil {
		return statsQuery{}, err
	}
	out.Season = season
	return out, nil
}

// writeServiceError logs at a level that matches who is at fault and writes
// the mapped envelope.
func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, seasonstats.ErrUnknownStat):
		h.logger.WarnContext(ctx, msg, args...)
	case errors.Is(err, context.Canceled):
		h.logger.DebugContext(ctx, msg, args...)
	default:
		h.logger.ErrorContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}
