// SPDX-License-Identifier: MIT
// File: metrics.go
// Role: Prometheus collectors for container activity: cache syncs,
// mutations, and cascading-delete fan-out.
// The collectors are instance-local (no promauto globals) so two
// containers never fight over registration; pass a Registerer to expose
// them, or nil to keep them unregistered.

package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the collectors emitted by m2m and typedmatrix. A nil
// *Metrics is the supported no-op form.
type Metrics struct {
	SyncsTotal     prometheus.Counter
	SyncDuration   prometheus.Histogram
	MutationsTotal prometheus.Counter
	EraseFanout    prometheus.Histogram
}

// NewMetrics builds the collector set under the given namespace and, when
// reg is non-nil, registers every collector with it.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		SyncsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_syncs_total",
			Help:      "Total number of inverse-view cache rebuilds.",
		}),
		SyncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cache_sync_duration_seconds",
			Help:      "Latency of inverse-view cache rebuilds.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		MutationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Total number of mutating operations applied.",
		}),
		EraseFanout: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "erase_fanout_entities",
			Help:      "Entities transitively marked per MarkToErase call.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.SyncsTotal, m.SyncDuration, m.MutationsTotal, m.EraseFanout)
	}

	return m
}

// ObserveSync records one cache rebuild of the given duration. Safe on
// nil receivers.
func (m *Metrics) ObserveSync(d time.Duration) {
	if m == nil {
		return
	}
	m.SyncsTotal.Inc()
	m.SyncDuration.Observe(d.Seconds())
}

// IncMutation records one mutating operation. Safe on nil receivers.
func (m *Metrics) IncMutation() {
	if m == nil {
		return
	}
	m.MutationsTotal.Inc()
}

// ObserveEraseFanout records the number of entities marked by one
// cascading-delete call. Safe on nil receivers.
func (m *Metrics) ObserveEraseFanout(n int) {
	if m == nil {
		return
	}
	m.EraseFanout.Observe(float64(n))
}
