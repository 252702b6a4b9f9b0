// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace of all richcontent metrics
const Namespace = "richcontent"

const (
	// Incoming direction: content on its way into storage
	Incoming = "incoming"
	// Outgoing direction: content on its way into API payloads
	Outgoing = "outgoing"

	// PathEmpty marks blank input passed through
	PathEmpty = "empty"
	// PathFast marks input returned without parsing
	PathFast = "fast"
	// PathParsed marks input that was parsed and rewritten
	PathParsed = "parsed"
)

var (
	fragmentsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "fragments_total",
		Help:      "A counter of processed HTML fragments by direction and processing path.",
	},
		[]string{"direction", "path"},
	)

	rewritesCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rewrites_total",
		Help:      "A counter of node rewrites by kind.",
	},
		[]string{"kind"},
	)

	// durationHistVec uses custom buckets, fragments are small and parsing is fast
	durationHistVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "processing_duration_seconds",
		Help:      "A histogram of fragment processing latencies.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
	},
		[]string{"direction"},
	)
)

// RegisterContentMetrics registers all of the metrics in registry, or in the
// standard registry when registry is nil
func RegisterContentMetrics(registry prometheus.Registerer) {
	ResetContentMetrics()
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	registry.MustRegister(fragmentsCounter, rewritesCounter, durationHistVec)
}

// ResetContentMetrics resets the metrics. The function is useful for designing
// self-contained unit tests where the count of metrics matters.
func ResetContentMetrics() {
	fragmentsCounter.Reset()
	rewritesCounter.Reset()
	durationHistVec.Reset()
}

// Fragment counts a processed fragment
func Fragment(direction, path string) {
	fragmentsCounter.WithLabelValues(direction, path).Inc()
}

// Rewrites adds count rewrites of kind
func Rewrites(kind string, count int) {
	if count > 0 {
		rewritesCounter.WithLabelValues(kind).Add(float64(count))
	}
}

// ObserveDuration records the processing time of a fragment since start
func ObserveDuration(direction string, start time.Time) {
	durationHistVec.WithLabelValues(direction).Observe(time.Since(start).Seconds())
}
