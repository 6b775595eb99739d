package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantOrigin  string
		wantMethods string
		wantNext    bool
	}{
		{
			name:        "configured origin echoed",
			allowed:     []string{"https://matchmetric.example.com"},
			method:      http.MethodGet,
			origin:      "https://matchmetric.example.com",
			wantStatus:  http.StatusOK,
			wantOrigin:  "https://matchmetric.example.com",
			wantMethods: "GET,OPTIONS",
			wantNext:    true,
		},
		{
			name:        "wildcard preflight",
			allowed:     []string{"*"},
			method:      http.MethodOptions,
			origin:      "https://matchmetric.example.com",
			wantStatus:  http.StatusNoContent,
			wantOrigin:  "*",
			wantMethods: "GET,OPTIONS",
		},
		{
			name:       "unknown origin gets no headers",
			allowed:    []string{"https://allowed.example.com", " "},
			method:     http.MethodGet,
			origin:     "https://other.example.com",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "no origin passes through",
			allowed:    []string{"*"},
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/v1/leaderboard?stat=goals", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			CORS(tt.allowed, next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantMethods, rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, tt.wantNext, called)
		})
	}
}

func TestShouldTraceRequest(t *testing.T) {
	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", " /HEALTHZ "} {
		assert.False(t, shouldTraceRequest(path), path)
	}
	for _, path := range []string{"/v1/leaderboard", "/v1/seasons", "/v1/totals", "/docs", "/"} {
		assert.True(t, shouldTraceRequest(path), path)
	}
}
