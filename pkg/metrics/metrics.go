package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the sortation metrics
type Metrics struct {
	serviceName string
	registry    *prometheus.Registry

	PackagesClassified  *prometheus.CounterVec
	PackagesFlagged     *prometheus.CounterVec
	InvalidMeasurements *prometheus.CounterVec
	PackageVolume       *prometheus.HistogramVec
}

// Config holds metrics configuration
type Config struct {
	ServiceName string
	Namespace   string
}

// DefaultConfig returns default metrics configuration
func DefaultConfig(serviceName string) *Config {
	return &Config{
		ServiceName: serviceName,
		Namespace:   "wms",
	}
}

// New creates a new Metrics instance backed by its own registry
func New(config *Config) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		serviceName: config.ServiceName,
		registry:    registry,
	}

	m.PackagesClassified = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "packages_classified_total",
			Help:      "Total number of packages classified, by dispatch stack",
		},
		[]string{"service", "stack"},
	)

	// reason is one of dimension, volume, mass
	m.PackagesFlagged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "packages_flagged_total",
			Help:      "Total number of packages that met a bulky or heavy threshold",
		},
		[]string{"service", "reason"},
	)

	m.InvalidMeasurements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "invalid_measurements_total",
			Help:      "Total number of rejected measurement fields",
		},
		[]string{"service", "field"},
	)

	m.PackageVolume = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "package_volume_cubic_centimeters",
			Help:      "Volume of classified packages in cubic centimeters",
			Buckets:   prometheus.ExponentialBuckets(1000, 4, 8),
		},
		[]string{"service", "stack"},
	)

	registry.MustRegister(
		m.PackagesClassified,
		m.PackagesFlagged,
		m.InvalidMeasurements,
		m.PackageVolume,
	)

	return m
}

// Registry returns the prometheus registry so an embedding process can expose it
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordClassification records a successfully classified package
func (m *Metrics) RecordClassification(stack string, volume float64) {
	m.PackagesClassified.WithLabelValues(m.serviceName, stack).Inc()
	m.PackageVolume.WithLabelValues(m.serviceName, stack).Observe(volume)
}

// RecordFlag records one threshold a package met
func (m *Metrics) RecordFlag(reason string) {
	m.PackagesFlagged.WithLabelValues(m.serviceName, reason).Inc()
}

// RecordInvalidMeasurement records each field that failed validation
func (m *Metrics) RecordInvalidMeasurement(fields ...string) {
	for _, field := range fields {
		m.InvalidMeasurements.WithLabelValues(m.serviceName, field).Inc()
	}
}
