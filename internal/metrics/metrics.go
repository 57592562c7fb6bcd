// Package metrics exposes Prometheus metrics for report generation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	FetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketboard_fetch_failures_total",
		Help: "Fetches that resolved to an absent series or quote",
	}, []string{"kind"})

	PanelsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketboard_panels_emitted_total",
		Help: "Panels emitted per report, by state",
	}, []string{"state"}) // populated | placeholder

	ReportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "marketboard_report_duration_seconds",
		Help:    "End-to-end report generation latency",
		Buckets: prometheus.DefBuckets,
	})

	ReportRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketboard_report_runs_total",
		Help: "Report runs by outcome",
	}, []string{"status"}) // ok | render_error
)

// Serve exposes /metrics on addr in the background. Used in daemon mode;
// one-shot runs skip it.
func Serve(addr string, log zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", addr).Msg("metrics listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()
}
