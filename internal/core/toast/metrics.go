package toast

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Removal reasons recorded in metrics and logs.
const (
	ReasonDismissed = "dismissed"
	ReasonExpired   = "expired"
	ReasonEvicted   = "evicted"
	ReasonClosed    = "closed"
)

// Metrics holds the Prometheus collectors for the registry. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	Added   *prometheus.CounterVec
	Removed *prometheus.CounterVec
	Active  prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg. If reg is
// nil the collectors are created but not registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Added: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber",
			Subsystem: "toast",
			Name:      "added_total",
			Help:      "Total notifications added, by kind.",
		}, []string{"kind"}),
		Removed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barber",
			Subsystem: "toast",
			Name:      "removed_total",
			Help:      "Total notifications removed, by reason.",
		}, []string{"reason"}),
		Active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "barber",
			Subsystem: "toast",
			Name:      "active",
			Help:      "Notifications currently in the list.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Added, m.Removed, m.Active)
	}

	return m
}

func (m *Metrics) added(k Kind, active int) {
	if m == nil {
		return
	}
	m.Added.WithLabelValues(string(k)).Inc()
	m.Active.Set(float64(active))
}

func (m *Metrics) removed(reason string, count, active int) {
	if m == nil || count == 0 {
		return
	}
	m.Removed.WithLabelValues(reason).Add(float64(count))
	m.Active.Set(float64(active))
}
