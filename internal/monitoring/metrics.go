package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for a catalog build.
type Metrics struct {
	PagesFetched  prometheus.Counter
	PageFailures  prometheus.Counter
	RecordsBuilt  prometheus.Counter
	Synthesized   prometheus.Counter
	Services      prometheus.Gauge
	BuildDuration prometheus.Histogram
}

// New creates metrics registered on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PagesFetched: factory.NewCounter(prometheus.CounterOpts{
			Name: "actionmap_pages_fetched_total",
			Help: "Documentation pages fetched and parsed",
		}),
		PageFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "actionmap_page_failures_total",
			Help: "Pages that contributed zero records (fetch failure, missing table, or shape error)",
		}),
		RecordsBuilt: factory.NewCounter(prometheus.CounterOpts{
			Name: "actionmap_records_built_total",
			Help: "Action records extracted from documentation pages",
		}),
		Synthesized: factory.NewCounter(prometheus.CounterOpts{
			Name: "actionmap_records_synthesized_total",
			Help: "Placeholder records created for undocumented actions",
		}),
		Services: factory.NewGauge(prometheus.GaugeOpts{
			Name: "actionmap_services",
			Help: "Services in the generated catalog",
		}),
		BuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "actionmap_build_duration_seconds",
			Help:    "Wall time of a full catalog build",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

// NewDefault creates metrics on the default registry.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
