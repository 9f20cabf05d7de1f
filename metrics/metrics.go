// Package metrics records search outcomes as Prometheus metrics.
//
// A Recorder registers its collectors on a caller-supplied Registerer, so
// tests and short-lived commands can use a private registry instead of the
// process-wide default.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridastar/astar"
)

// Outcome labels for gridastar_searches_total.
const (
	OutcomeFound   = "found"
	OutcomeNoPath  = "no_path"
	OutcomeLimit   = "limit"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Recorder holds the search collectors.
type Recorder struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	cost     prometheus.Histogram
}

// NewRecorder creates and registers the collectors on reg. A nil reg means
// prometheus.DefaultRegisterer. Registering twice on one registry panics.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Recorder{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gridastar_searches_total",
			Help: "Total searches by outcome",
		}, []string{"outcome"}),
		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridastar_expanded_cells",
			Help:    "Cells expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		cost: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridastar_path_cost",
			Help:    "Cost of found paths",
			Buckets: prometheus.ExponentialBuckets(10, 2, 12),
		}),
	}
}

// Observe counts one search. expanded is always recorded; cost only for OutcomeFound.
func (r *Recorder) Observe(outcome string, expanded, cost int) {
	r.searches.WithLabelValues(outcome).Inc()
	r.expanded.Observe(float64(expanded))
	if outcome == OutcomeFound {
		r.cost.Observe(float64(cost))
	}
}

// OutcomeOf classifies the result of astar.Search for the outcome label.
func OutcomeOf(res *astar.Result, err error) string {
	switch {
	case err == nil && res != nil && res.Found:
		return OutcomeFound
	case errors.Is(err, astar.ErrNoPath):
		return OutcomeNoPath
	case errors.Is(err, astar.ErrExpansionLimit):
		return OutcomeLimit
	case errors.Is(err, astar.ErrInvalidStart), errors.Is(err, astar.ErrInvalidGoal):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
