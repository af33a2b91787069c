// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Prometheus instrumentation for Run.

package search

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	// SearchesTotal counts searches by algorithm and outcome.
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rotas_searches_total",
			Help: "Total number of route searches run",
		},
		[]string{"algorithm", "outcome"},
	)

	// SearchExpansions tracks how many cities each search visited.
	SearchExpansions = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rotas_search_expansions",
			Help:    "Cities visited per route search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14), // 1 to 8192
		},
		[]string{"algorithm"},
	)

	// SearchDuration tracks wall time per search.
	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rotas_search_duration_seconds",
			Help:    "Duration of route searches",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
		},
		[]string{"algorithm"},
	)
)

// Register adds the search collectors to reg. Registering twice with the
// same registry is not an error.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{SearchesTotal, SearchExpansions, SearchDuration} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}

			return err
		}
	}

	return nil
}

func observe(res *Result, err error) {
	algo := res.Algorithm.String()
	outcome := OutcomeFound
	switch {
	case err == nil:
	case isNoPath(err):
		outcome = OutcomeNotFound
	default:
		outcome = OutcomeError
	}
	SearchesTotal.WithLabelValues(algo, outcome).Inc()
	SearchExpansions.WithLabelValues(algo).Observe(float64(len(res.Visited)))
	SearchDuration.WithLabelValues(algo).Observe(res.Elapsed.Seconds())
}
