package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// timeline job.
type Metrics struct {
	RecordsFetched   *prometheus.CounterVec // labels: source
	FetchErrors      *prometheus.CounterVec // labels: source
	RecordsRejected  prometheus.Counter
	EntriesPublished prometheus.Gauge
	RunDuration      prometheus.Histogram
	Runs             *prometheus.CounterVec // labels: outcome={success,error}
	LastSuccess      prometheus.Gauge
}

// NewMetrics creates and registers all job metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RecordsFetched,
		m.FetchErrors,
		m.RecordsRejected,
		m.EntriesPublished,
		m.RunDuration,
		m.Runs,
		m.LastSuccess,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsFetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sdo_timeline",
			Name:      "records_fetched_total",
			Help:      "Raw records extracted per upstream source.",
		}, []string{"source"}),
		FetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sdo_timeline",
			Name:      "fetch_errors_total",
			Help:      "Failed source fetches per upstream source.",
		}, []string{"source"}),
		RecordsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sdo_timeline",
			Name:      "records_rejected_total",
			Help:      "Records dropped for violating the input contract.",
		}),
		EntriesPublished: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sdo_timeline",
			Name:      "entries_published",
			Help:      "Rows in the most recently published timeline.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sdo_timeline",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete fetch-normalize-render-publish run.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sdo_timeline",
			Name:      "runs_total",
			Help:      "Completed runs by outcome.",
		}, []string{"outcome"}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sdo_timeline",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful publish.",
		}),
	}
}
