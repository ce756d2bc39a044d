// Package metrics records fetch outcomes as Prometheus series, suitable for
// the node_exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/adamwoolhether/httpget/fetcher"
)

const namespace = "httpget"

// Metrics implements [fetcher.Recorder] on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	fetchTotal      *prometheus.CounterVec
	durationSeconds prometheus.Histogram
	fileSizeBytes   prometheus.Histogram
	lastStatusCode  prometheus.Gauge
}

// New creates a Metrics with every series registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.fetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Fetches by result.",
		},
		[]string{"result"},
	)

	m.durationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Wall time of a fetch, body included.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// 1KB through 1GB.
	m.fileSizeBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_bytes",
			Help:      "Bytes saved by successful fetches.",
			Buckets:   prometheus.ExponentialBuckets(1024, 10, 7),
		},
	)

	m.lastStatusCode = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_status_code",
			Help:      "HTTP status of the most recent fetch, 0 when none was received.",
		},
	)

	m.registry.MustRegister(
		m.fetchTotal,
		m.durationSeconds,
		m.fileSizeBytes,
		m.lastStatusCode,
	)

	return m
}

// RecordFetch implements [fetcher.Recorder].
func (m *Metrics) RecordFetch(kind fetcher.Kind, res fetcher.Result) {
	m.fetchTotal.WithLabelValues(kind.String()).Inc()
	m.durationSeconds.Observe(res.Duration.Seconds())
	m.lastStatusCode.Set(float64(res.StatusCode))

	if kind == fetcher.KindNone {
		m.fileSizeBytes.Observe(float64(res.Bytes))
	}
}

// Registry exposes the underlying gatherer.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes every series to path in the text exposition format.
// The file is written atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}

	return nil
}
