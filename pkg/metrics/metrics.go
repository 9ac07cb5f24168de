// Package metrics exposes prometheus instrumentation for the scan pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors updated by the scanner and scheduler
type Metrics struct {
	ScansTotal   *prometheus.CounterVec
	ScanDuration prometheus.Histogram
	PendingScans prometheus.Gauge
	AlertsTotal  prometheus.Counter
}

// New registers the collectors on the default registry
func New() *Metrics {
	return &Metrics{
		ScansTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webpulse",
			Name:      "scans_total",
			Help:      "Number of executed scans by outcome",
		}, []string{"status"}),
		ScanDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "webpulse",
			Name:      "scan_duration_seconds",
			Help:      "Wall-clock duration of scan execution",
			Buckets:   []float64{1, 5, 10, 30, 60, 90, 120, 180},
		}),
		PendingScans: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "webpulse",
			Name:      "pending_scans",
			Help:      "Pending scans observed on the last queue drain",
		}),
		AlertsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "webpulse",
			Name:      "performance_alerts_total",
			Help:      "Number of performance regression alerts dispatched",
		}),
	}
}

// ScanCompleted records a finished scan with its outcome and duration
func (m *Metrics) ScanCompleted(status string, seconds float64) {
	if m == nil {
		return
	}
	m.ScansTotal.WithLabelValues(status).Inc()
	m.ScanDuration.Observe(seconds)
}

// QueueDepth records how many pending scans the drain pass observed
func (m *Metrics) QueueDepth(n int) {
	if m == nil {
		return
	}
	m.PendingScans.Set(float64(n))
}

// AlertSent counts a dispatched regression alert
func (m *Metrics) AlertSent() {
	if m == nil {
		return
	}
	m.AlertsTotal.Inc()
}
