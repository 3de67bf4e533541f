package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/legacyprocs/internal/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(reg)

	handler := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/clients/99" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/api/clients/1", "/api/clients/2", "/api/clients/99", "/api/clients"} {
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	const want = `
# HELP legacyprocs_http_requests_total Total HTTP requests processed
# TYPE legacyprocs_http_requests_total counter
legacyprocs_http_requests_total{method="GET",path="/api/clients",status="200"} 1
legacyprocs_http_requests_total{method="GET",path="/api/clients/{id}",status="200"} 2
legacyprocs_http_requests_total{method="GET",path="/api/clients/{id}",status="404"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want), "legacyprocs_http_requests_total"); err != nil {
		t.Error(err)
	}

	if n := testutil.CollectAndCount(reg, "legacyprocs_http_request_duration_seconds"); n != 3 {
		t.Errorf("duration series = %d, want: 3", n)
	}
}
