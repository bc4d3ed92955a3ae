package runner

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kingsene19/graph-coloration/coloring"
)

// TestMetricsHandler_Health verifies the health endpoint shape.
func TestMetricsHandler_Health(t *testing.T) {
	srv := httptest.NewServer(metricsHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"status": "up"}`, string(body))
}

// TestMetricsHandler_Metrics verifies observed solves show up on the
// scrape page under the expected metric names.
func TestMetricsHandler_Metrics(t *testing.T) {
	observeSolve(coloring.Summary{
		Status:     coloring.StatusSolved,
		Solved:     true,
		ColorCount: 3,
		Duration:   120 * time.Millisecond,
	})

	srv := httptest.NewServer(metricsHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	page := string(body)
	require.Contains(t, page, `coloration_solves_total{status="SOLVED"}`)
	require.Contains(t, page, "coloration_solve_duration_seconds")
	require.Contains(t, page, "coloration_colors_used")
}
