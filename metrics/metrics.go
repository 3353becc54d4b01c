// Package metrics holds the Prometheus collectors for the polling engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedwatch_cycles_total",
		Help: "Completed monitoring cycles.",
	})

	CyclesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedwatch_cycles_skipped_total",
		Help: "Ticks skipped because the previous cycle was still running.",
	})

	FetchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedwatch_fetch_errors_total",
		Help: "Per-feed fetch failures by cause.",
	}, []string{"cause"})

	MatchesInsertedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedwatch_matches_inserted_total",
		Help: "New matches recorded.",
	})

	CycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "feedwatch_cycle_duration_seconds",
		Help:    "Wall time of one poll-all-feeds cycle.",
		Buckets: prometheus.DefBuckets,
	})
)
