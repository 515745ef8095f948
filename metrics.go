package cecs

import "github.com/prometheus/client_golang/prometheus"

// dispatcherMetrics instruments the scheduling loop: how many ticks have
// run, how often the clique cache paid off, and how large the scheduled
// cliques tend to be. All of it is optional; a Dispatcher built without a
// Registerer records into an internal registry nobody reads.
type dispatcherMetrics struct {
	ticks       prometheus.Counter
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	cliqueSize  prometheus.Histogram
}

func newDispatcherMetrics(reg prometheus.Registerer) *dispatcherMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &dispatcherMetrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cecs",
			Subsystem: "dispatcher",
			Name:      "ticks_total",
			Help:      "Number of dispatcher ticks run.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cecs",
			Subsystem: "dispatcher",
			Name:      "clique_cache_hits_total",
			Help:      "Number of scheduling decisions served from the clique cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cecs",
			Subsystem: "dispatcher",
			Name:      "clique_cache_misses_total",
			Help:      "Number of scheduling decisions that required a fresh clique search.",
		}),
		cliqueSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cecs",
			Subsystem: "dispatcher",
			Name:      "clique_size",
			Help:      "Size of the maximum clique dispatched per scheduling decision.",
			Buckets:   prometheus.LinearBuckets(0, 2, 8),
		}),
	}
	reg.MustRegister(m.ticks, m.cacheHits, m.cacheMisses, m.cliqueSize)
	return m
}
