// Package metrics provides Prometheus metrics for runviz.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reloads counts completed dataset reloads by trigger ("check" for the
// staleness path, "template" for an explicit switch).
var Reloads = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "runviz",
	Name:      "reloads_total",
	Help:      "Completed dataset reloads.",
}, []string{"trigger"})

// ReloadFailures counts reload pipelines that aborted with an error.
var ReloadFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "runviz",
	Name:      "reload_failures_total",
	Help:      "Reload pipelines that failed and kept the previous snapshot.",
})

// LeaseContention counts non-blocking lease acquisitions that lost.
var LeaseContention = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "runviz",
	Name:      "lease_contention_total",
	Help:      "Lease acquisitions skipped because another holder was live.",
}, []string{"lease"})

// ResponseSize tracks HTTP response body sizes.
var ResponseSize = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "runviz",
	Name:      "response_size_bytes",
	Help:      "HTTP response body size in bytes.",
	Buckets:   prometheus.ExponentialBuckets(256, 4, 10),
})
