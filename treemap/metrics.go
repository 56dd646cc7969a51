package treemap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric definitions with appropriate labels. Only maps constructed with
// WithName participate; unnamed maps skip recording so that short-lived or
// anonymous instances don't pollute the label space.
var (
	// insertsTotal tracks node insertions by map name.
	insertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "treemap_inserts_total",
		Help: "Total number of tree node insertions by map name",
	}, []string{"map"})

	// erasesTotal tracks node removals by map name.
	erasesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "treemap_erases_total",
		Help: "Total number of tree node removals by map name",
	}, []string{"map"})

	// rotationsTotal tracks rebalancing rotations by map name.
	rotationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "treemap_rotations_total",
		Help: "Total number of rebalancing rotations by map name",
	}, []string{"map"})
)

func metricInserts(name string) {
	if name == "" {
		return
	}

	insertsTotal.WithLabelValues(name).Inc()
}

func metricErases(name string) {
	if name == "" {
		return
	}

	erasesTotal.WithLabelValues(name).Inc()
}

func metricRotations(name string) {
	if name == "" {
		return
	}

	rotationsTotal.WithLabelValues(name).Inc()
}
