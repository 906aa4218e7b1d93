// Package metrics tracks session activity with Prometheus collectors.
//
// The application has no network listener, so metrics are exported by writing
// the registry in text exposition format to a file at the end of a session,
// suitable for the node_exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "autogallery"

// Metrics holds the collectors for one session on a private registry.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	skipped    prometheus.Counter
	records    prometheus.Gauge
}

// New creates and registers the session collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Menu operations performed, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_skipped_records_total",
			Help:      "Stored lines skipped at load because they could not be parsed.",
		}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Automobile records currently held in the inventory.",
		}),
	}
	m.registry.MustRegister(m.operations, m.skipped, m.records)
	return m
}

// ObserveOperation counts one completed operation.
func (m *Metrics) ObserveOperation(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// ObserveSkipped adds n skipped lines.
func (m *Metrics) ObserveSkipped(n int) {
	m.skipped.Add(float64(n))
}

// SetRecords records the current inventory size.
func (m *Metrics) SetRecords(n int) {
	m.records.Set(float64(n))
}

// Registry exposes the underlying gatherer.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics to path, replacing it atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
