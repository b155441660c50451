// Package metrics keeps in-process Prometheus counters for a session.
// There is no HTTP exposition; the registry is gathered on exit and
// written to the log.
package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

// Payment kinds recorded by PaymentsRecorded.
const (
	KindSplit      = "split"
	KindSettlement = "settlement"
)

// Metrics holds the counters for one application session.
type Metrics struct {
	registry *prometheus.Registry

	Intents          *prometheus.CounterVec
	StoreErrors      *prometheus.CounterVec
	PaymentsRecorded *prometheus.CounterVec
}

// New creates the counters and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitwise",
			Name:      "intents_total",
			Help:      "Intents handled by the update loop.",
		}, []string{"intent"}),
		StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitwise",
			Name:      "store_errors_total",
			Help:      "Store operations that failed while handling an intent.",
		}, []string{"op"}),
		PaymentsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitwise",
			Name:      "payments_recorded_total",
			Help:      "Payments written to the store.",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(m.Intents, m.StoreErrors, m.PaymentsRecorded)
	return m
}

// Sample is one counter value from a Snapshot.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Snapshot gathers every non-zero counter, sorted by metric name.
func (m *Metrics) Snapshot() ([]Sample, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			labels := make(map[string]string, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			samples = append(samples, Sample{
				Name:   mf.GetName(),
				Labels: labels,
				Value:  metric.GetCounter().GetValue(),
			})
		}
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Name < samples[j].Name
	})

	return samples, nil
}
