package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	analysesTotal    *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	providerFetches  *prometheus.CounterVec
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
	watchCycles      prometheus.Counter
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		analysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gauge_analyses_total",
				Help: "Total number of analyses performed",
			},
			[]string{"kind", "result"},
		),

		analysisDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gauge_analysis_duration_seconds",
				Help:    "Analysis duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		providerFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gauge_provider_fetches_total",
				Help: "Total number of market data fetches by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),

		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gauge_cache_hits_total",
				Help: "Market data cache hits by kind",
			},
			[]string{"kind"},
		),

		cacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gauge_cache_misses_total",
				Help: "Market data cache misses by kind",
			},
			[]string{"kind"},
		),

		watchCycles: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "gauge_watch_cycles_total",
				Help: "Total number of watchlist analysis cycles",
			},
		),
	}

	reg.MustRegister(r.analysesTotal)
	reg.MustRegister(r.analysisDuration)
	reg.MustRegister(r.providerFetches)
	reg.MustRegister(r.cacheHits)
	reg.MustRegister(r.cacheMisses)
	reg.MustRegister(r.watchCycles)

	return r
}

// RecordAnalysis increments the analysis counter and observes duration.
func (r *Registry) RecordAnalysis(kind, result string, duration time.Duration) {
	r.analysesTotal.WithLabelValues(kind, result).Inc()
	r.analysisDuration.Observe(duration.Seconds())
}

// RecordFetch increments the provider fetch counter.
func (r *Registry) RecordFetch(kind, outcome string) {
	r.providerFetches.WithLabelValues(kind, outcome).Inc()
}

// RecordCacheHit increments the cache hit counter for a data kind.
func (r *Registry) RecordCacheHit(kind string) {
	r.cacheHits.WithLabelValues(kind).Inc()
}

// RecordCacheMiss increments the cache miss counter for a data kind.
func (r *Registry) RecordCacheMiss(kind string) {
	r.cacheMisses.WithLabelValues(kind).Inc()
}

// RecordWatchCycle increments the watch cycle counter.
func (r *Registry) RecordWatchCycle() {
	r.watchCycles.Inc()
}
