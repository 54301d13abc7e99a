// Package metrics exposes Prometheus collectors for the quote collection and
// the remote reconciler.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quotekeeper"

// Sync results used as label values.
const (
	ResultOK      = "ok"
	ResultSkipped = "skipped"
	ResultError   = "error"
)

// Metrics holds every collector on its own registry so tests and multiple
// instances never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	syncRuns       *prometheus.CounterVec
	syncDuration   prometheus.Histogram
	pushed         prometheus.Counter
	merged         prometheus.Counter
	ticksSkipped   prometheus.Counter
	collectionSize prometheus.Gauge
}

// New creates and registers the collectors, including the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		syncRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "runs_total",
			Help:      "Sync runs by result.",
		}, []string{"result"}),
		syncDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "duration_seconds",
			Help:      "Duration of sync runs that were not skipped.",
			Buckets:   prometheus.DefBuckets,
		}),
		pushed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "quotes_pushed_total",
			Help:      "Quotes written to the remote API.",
		}),
		merged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "quotes_merged_total",
			Help:      "Remote quotes appended to the local collection.",
		}),
		ticksSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "ticks_skipped_total",
			Help:      "Scheduler ticks dropped because the previous run was still in flight.",
		}),
		collectionSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_size",
			Help:      "Number of quotes in the local collection.",
		}),
	}
}

// SyncCompleted records one sync run.
func (m *Metrics) SyncCompleted(result string, d time.Duration, pushed, merged int) {
	m.syncRuns.WithLabelValues(result).Inc()

	if result == ResultSkipped {
		return
	}

	m.syncDuration.Observe(d.Seconds())
	m.pushed.Add(float64(pushed))
	m.merged.Add(float64(merged))
}

// QuotePushed records a push made outside a sync run.
func (m *Metrics) QuotePushed() {
	m.pushed.Inc()
}

// TickSkipped records a dropped scheduler tick.
func (m *Metrics) TickSkipped() {
	m.ticksSkipped.Inc()
}

// CollectionSize sets the collection size gauge.
func (m *Metrics) CollectionSize(n int) {
	m.collectionSize.Set(float64(n))
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
