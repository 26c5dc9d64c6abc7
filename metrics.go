package domform

import (
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors describing form activity.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	validations *prometheus.CounterVec
	submits     *prometheus.CounterVec
	captures    *prometheus.CounterVec
	attached    prometheus.Gauge
}

// NewMetrics creates the collectors under namespace. They are not
// registered until Register is called.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultMetricsNamespace
	}

	return &Metrics{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_validations_total",
			Help:      "Field validations by result",
		}, []string{"result"}),
		submits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submits_total",
			Help:      "Handled submit events by outcome",
		}, []string{"outcome"}),
		captures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "value_captures_total",
			Help:      "Values captured from controls by control type",
		}, []string{"control"}),
		attached: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "attached_containers",
			Help:      "Form containers with delegated listeners attached",
		}),
	}
}

// Collectors returns every collector owned by m
func (m *Metrics) Collectors() []prometheus.Collector {
	if m == nil {
		return nil
	}
	return []prometheus.Collector{m.validations, m.submits, m.captures, m.attached}
}

// Register registers every collector with reg
func (m *Metrics) Register(reg prometheus.Registerer) error {
	if m == nil {
		return nil
	}
	if reg == nil {
		return newOperationError("register_metrics", "registerer cannot be nil", ErrInvalidConfig)
	}

	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			var alreadyRegErr prometheus.AlreadyRegisteredError
			if errors.As(err, &alreadyRegErr) {
				return WrapError(err, "register_metrics", "collector already registered")
			}
			return WrapError(err, "register_metrics", "failed to register collector")
		}
	}
	return nil
}

func (m *Metrics) recordValidation(message string) {
	if m == nil {
		return
	}
	result := "valid"
	if message != "" {
		result = "invalid"
	}
	m.validations.WithLabelValues(result).Inc()
}

func (m *Metrics) recordSubmit(valid bool) {
	if m == nil {
		return
	}
	outcome := "valid"
	if !valid {
		outcome = "invalid"
	}
	m.submits.WithLabelValues(outcome).Inc()
}

func (m *Metrics) recordCapture(kind controlKind) {
	if m == nil {
		return
	}
	m.captures.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) setAttached(n int) {
	if m == nil {
		return
	}
	m.attached.Set(float64(n))
}

// EnableMetrics creates collectors under the configured namespace,
// registers them with reg and starts recording. On failure the manager
// keeps its previous metrics.
func (m *Manager) EnableMetrics(reg prometheus.Registerer) (*Metrics, error) {
	metrics := NewMetrics(m.config.MetricsNamespace)
	if err := metrics.Register(reg); err != nil {
		m.logWarn("metrics registration failed", slog.String("error", sanitizeError(err)))
		return nil, err
	}
	m.SetMetrics(metrics)
	return metrics, nil
}
