package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/matchmetric/internal/config"
	"github.com/riskibarqy/matchmetric/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingOnlyDB struct {
	pingErr error
}

func (pingOnlyDB) SelectContext(context.Context, any, string, ...any) error { return nil }
func (pingOnlyDB) GetContext(context.Context, any, string, ...any) error    { return nil }
func (d pingOnlyDB) PingContext(context.Context) error                      { return d.pingErr }

func testConfig() config.Config {
	return config.Config{
		HTTPAddr:                ":0",
		DBQueryTimeout:          time.Second,
		DBCircuitEnabled:        true,
		DBCircuitFailureCount:   3,
		DBCircuitOpenTimeout:    time.Second,
		DBCircuitHalfOpenMaxReq: 1,
		LeagueID:                8,
		LeagueName:              "Premier League",
		DefaultSeasonID:         23614,
		LeaderboardDefaultLimit: 25,
		LeaderboardMaxLimit:     100,
		SeasonHistoryWorkers:    2,
		CORSAllowedOrigins:      []string{"*"},
	}
}

func TestNewServices_UsesConfiguredScope(t *testing.T) {
	services := NewServices(testConfig(), pingOnlyDB{}, logging.NewNop())

	scope := services.Stats.Scope()
	assert.Equal(t, int64(8), scope.LeagueID)
	assert.Equal(t, "Premier League", scope.LeagueName)
	assert.Equal(t, int64(23614), scope.DefaultSeasonID)
	assert.Equal(t, 100, services.Stats.MaxLimit())
}

func TestNewHTTPServer(t *testing.T) {
	cfg := testConfig()
	services := NewServices(cfg, pingOnlyDB{}, logging.NewNop())

	srv, err := NewHTTPServer(cfg, services, logging.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	cfg.HTTPAddr = ""
	_, err = NewHTTPServer(cfg, services, logging.NewNop())
	assert.Error(t, err)
}
