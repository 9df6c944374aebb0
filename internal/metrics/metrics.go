package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all Prometheus metrics for backtest runs.
type Registry struct {
	*prometheus.Registry

	backtestsTotal   *prometheus.CounterVec
	backtestDuration prometheus.Histogram
	tradesSimulated  *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		backtestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tbs_backtests_total",
				Help: "Total number of backtest runs",
			},
			[]string{"strategy", "status"},
		),

		backtestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tbs_backtest_duration_seconds",
				Help:    "Backtest run duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		tradesSimulated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tbs_trades_simulated_total",
				Help: "Total number of simulated trades",
			},
			[]string{"strategy", "outcome"},
		),
	}

	reg.MustRegister(r.backtestsTotal)
	reg.MustRegister(r.backtestDuration)
	reg.MustRegister(r.tradesSimulated)

	return r
}

// RecordBacktest records one completed (or failed) backtest run.
func (r *Registry) RecordBacktest(strategy, status string, duration time.Duration) {
	r.backtestsTotal.WithLabelValues(strategy, status).Inc()
	r.backtestDuration.Observe(duration.Seconds())
}

// RecordTrades records the win/loss trade counts of a run.
func (r *Registry) RecordTrades(strategy string, wins, losses int) {
	r.tradesSimulated.WithLabelValues(strategy, "win").Add(float64(wins))
	r.tradesSimulated.WithLabelValues(strategy, "loss").Add(float64(losses))
}

// Handler returns an HTTP handler exposing the registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{})
}
