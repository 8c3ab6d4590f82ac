package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the validation service. A nil *Metrics
// is valid and turns every method into a no-op, which keeps the engine-facing
// code free of conditionals.
type Metrics struct {
	// Validation outcomes by status tag and acquirer
	ValidationOutcome *prometheus.CounterVec

	// End-to-end validation latency
	ValidationLatency prometheus.Histogram
}

// New creates a Metrics instance with all service metrics registered on the
// default registry. Call it once per process.
func New() *Metrics {
	return &Metrics{
		ValidationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ferramentas_validation_outcomes_total",
			Help: "Total validation outcomes by status and acquirer",
		}, []string{"status", "acquirer"}),

		ValidationLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ferramentas_validation_duration_seconds",
			Help:    "Duration of a full record validation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005},
		}),
	}
}

// IncrementOutcome records a validation outcome.
func (m *Metrics) IncrementOutcome(status, acquirer string) {
	if m != nil {
		m.ValidationOutcome.WithLabelValues(status, acquirer).Inc()
	}
}

// ObserveValidationLatency records the duration of a single validation call.
func (m *Metrics) ObserveValidationLatency(d time.Duration) {
	if m != nil {
		m.ValidationLatency.Observe(d.Seconds())
	}
}
