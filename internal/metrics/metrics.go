// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quicklink_analytics"

// Ingest results.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
)

type Metrics struct {
	registry       *prometheus.Registry
	eventsIngested *prometheus.CounterVec
	queryDuration  *prometheus.HistogramVec
	batchesWritten *prometheus.CounterVec
}

// New registers the collectors on a fresh registry. Pass withRuntime to also
// export Go runtime and process collectors.
func New(withRuntime bool) *Metrics {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		registry: reg,
		eventsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_ingested_total",
			Help:      "Ingestion requests by event type and result.",
		}, []string{"event_type", "result"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Time to build an analytics report, by period kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"period"}),
		batchesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consumer_events_written_total",
			Help:      "Events written by the queue consumer, by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(m.eventsIngested, m.queryDuration, m.batchesWritten)
	return m
}

// ObserveIngest counts one ingestion attempt. eventType is empty when the
// request never named a valid type.
func (m *Metrics) ObserveIngest(eventType, result string) {
	if eventType == "" {
		eventType = "unknown"
	}
	m.eventsIngested.WithLabelValues(eventType, result).Inc()
}

func (m *Metrics) ObserveQuery(period string, d time.Duration) {
	m.queryDuration.WithLabelValues(period).Observe(d.Seconds())
}

// ObserveBatch counts n events written (or failed) by the consumer.
func (m *Metrics) ObserveBatch(result string, n int) {
	m.batchesWritten.WithLabelValues(result).Add(float64(n))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
