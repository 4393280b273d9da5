package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// aggregation engine and summary publisher.
type Metrics struct {
	RecordsFolded  prometheus.Counter
	MalformedLines prometheus.Counter
	CoercedFields  prometheus.Counter
	StatesTracked  prometheus.Gauge

	// Per-stream metrics.
	StreamsProcessed         *prometheus.CounterVec // labels: outcome={ok,failed}
	StreamProcessingDuration prometheus.Histogram

	SummariesPublished prometheus.Counter
}

// NewMetrics creates and registers all engine metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RecordsFolded,
		m.MalformedLines,
		m.CoercedFields,
		m.StatesTracked,
		m.StreamsProcessed,
		m.StreamProcessingDuration,
		m.SummariesPublished,
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
		RecordsFolded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate",
			Name:      "records_folded_total",
			Help:      "Total observation records folded into state accumulators.",
		}),
		MalformedLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate",
			Name:      "lines_malformed_total",
			Help:      "Total input lines skipped for having too few fields.",
		}),
		CoercedFields: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate",
			Name:      "fields_coerced_total",
			Help:      "Total unparseable numeric fields coerced to zero.",
		}),
		StatesTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "climate",
			Name:      "states_tracked",
			Help:      "Number of distinct state codes in the accumulator table.",
		}),
		StreamsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate",
			Name:      "streams_processed_total",
			Help:      "Input streams by outcome.",
		}, []string{"outcome"}),
		StreamProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climate",
			Name:      "stream_processing_duration_seconds",
			Help:      "Duration of a complete read-parse-fold pass over one stream.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		SummariesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate",
			Name:      "summaries_published_total",
			Help:      "State summaries published to the Kafka sink.",
		}),
	}
}
