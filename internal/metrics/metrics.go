// Package metrics provides optional Prometheus instrumentation around Rmi
// build and query latency, grounded on hupe1980-vecgo/examples/
// observability's use of prometheus/client_golang for an embedded index.
// Purely additive: nothing in the rmi package depends on this, and a
// caller that never touches this package pays nothing for it.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the Prometheus instruments cmd/rmi-bench serve registers.
// serve updates the build, size and empty-bucket instruments; the query
// instruments change only through ObserveQuery.
type Collector struct {
	BuildDuration  prometheus.Histogram
	QueryDuration  prometheus.Histogram
	QueryTotal     prometheus.Counter
	EmptyBuckets   prometheus.Gauge
	IndexSizeBytes prometheus.Gauge
}

// NewCollector constructs and registers a Collector's instruments on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rmi_build_duration_seconds",
			Help:    "Time to construct an Rmi.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rmi_query_duration_seconds",
			Help:    "Time per Search call.",
			Buckets: prometheus.ExponentialBuckets(1e-9, 4, 12),
		}),
		QueryTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rmi_query_total",
			Help: "Total number of Search calls observed.",
		}),
		EmptyBuckets: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rmi_empty_buckets",
			Help: "Number of layer-2 buckets filled by an anchor model rather than a real fit in the most recent build.",
		}),
		IndexSizeBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rmi_size_bytes",
			Help: "SizeInBytes() of the most recently built Rmi.",
		}),
	}
	reg.MustRegister(c.BuildDuration, c.QueryDuration, c.QueryTotal, c.EmptyBuckets, c.IndexSizeBytes)
	return c
}

// ObserveBuild records a completed build's wall-clock time.
func (self *Collector) ObserveBuild(d time.Duration) {
	self.BuildDuration.Observe(d.Seconds())
}

// ObserveQuery records one Search call's wall-clock time.
func (self *Collector) ObserveQuery(d time.Duration) {
	self.QueryDuration.Observe(d.Seconds())
	self.QueryTotal.Inc()
}
