package helio

import "github.com/prometheus/client_golang/prometheus"

var (
	cacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "helio_boundary_cache_hits_total",
		Help: "Total number of boundary cache hits.",
	})
	cacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "helio_boundary_cache_misses_total",
		Help: "Total number of boundary cache misses.",
	})
	cacheEvictionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "helio_boundary_cache_evictions_total",
		Help: "Total number of boundary cache entries evicted.",
	})
	cacheEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "helio_boundary_cache_entries",
		Help: "Current number of boundary cache entries.",
	})
	solverCallsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "helio_boundary_solver_calls_total",
		Help: "Total number of pressure-balance solver invocations.",
	})
)

func init() {
	prometheus.MustRegister(cacheHitsTotal)
	prometheus.MustRegister(cacheMissesTotal)
	prometheus.MustRegister(cacheEvictionsTotal)
	prometheus.MustRegister(cacheEntries)
	prometheus.MustRegister(solverCallsTotal)
}
