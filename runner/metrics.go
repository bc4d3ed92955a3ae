package runner

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kingsene19/graph-coloration/coloring"
)

var (
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coloration_solves_total",
		Help: "Solve attempts by outcome status.",
	}, []string{"status"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "coloration_solve_duration_seconds",
		Help:    "Wall-clock duration of one instance solve.",
		Buckets: prometheus.DefBuckets,
	})

	colorsUsed = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "coloration_colors_used",
		Help:    "Distinct colors used by a successful solve.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})
)

// observeSolve records one finished solve in the process metrics.
func observeSolve(sum coloring.Summary) {
	solvesTotal.WithLabelValues(string(sum.Status)).Inc()
	solveDuration.Observe(sum.Duration.Seconds())
	if sum.Solved {
		colorsUsed.Observe(float64(sum.ColorCount))
	}
}

// MetricsServer exposes /metrics and /health until stopped.
type MetricsServer struct {
	server *http.Server
}

// metricsHandler builds the observability mux.
func metricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "up"})
	})

	return mux
}

// ServeMetrics starts the observability endpoint on addr and returns its
// handle. The listener runs until Stop; startup failures surface in the
// log, not to the caller.
func ServeMetrics(addr string) *MetricsServer {
	s := &MetricsServer{server: &http.Server{Addr: addr, Handler: metricsHandler()}}

	slog.Info("metrics endpoint starting", "addr", addr)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics endpoint failed", "error", err)
		}
	}()

	return s
}

// Stop shuts the endpoint down, honoring ctx.
func (s *MetricsServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
