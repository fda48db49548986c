package domain

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	m "repattern.dev/pkg/repattern/internal/model"
)

const metricsNamespace = "repattern"

// Metrics collects run statistics in a private registry that can be exported as a
// node-exporter textfile. A nil *Metrics records nothing.
type Metrics struct {
	registry       *prometheus.Registry
	changeSets     *prometheus.CounterVec
	patterns       *prometheus.CounterVec
	familyDuration *prometheus.HistogramVec
}

// NewMetrics registers the run collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		changeSets: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "change_sets_total",
			Help:      "Change-sets processed, by outcome (detected, skipped).",
		}, []string{"outcome"}),
		patterns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "pattern_instances_total",
			Help:      "Repair-pattern instances found, by pattern.",
		}, []string{"pattern"}),
		familyDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "family_duration_seconds",
			Help:      "Time spent running one pattern family on one change-set.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"family"}),
	}
}

// Registry exposes the underlying registry.
func (mt *Metrics) Registry() *prometheus.Registry {
	if mt == nil {
		return nil
	}

	return mt.registry
}

// ObserveFamily records how long one family took.
func (mt *Metrics) ObserveFamily(family m.Family, elapsed time.Duration) {
	if mt == nil {
		return
	}

	mt.familyDuration.WithLabelValues(string(family)).Observe(elapsed.Seconds())
}

// RecordReport counts a detected change-set and its pattern instances.
func (mt *Metrics) RecordReport(report m.ChangeSetReport) {
	if mt == nil {
		return
	}

	mt.changeSets.WithLabelValues("detected").Inc()

	for name, count := range report.Counters {
		if count > 0 {
			mt.patterns.WithLabelValues(string(name)).Add(float64(count))
		}
	}
}

// RecordSkipped counts a change-set that could not be loaded.
func (mt *Metrics) RecordSkipped() {
	if mt == nil {
		return
	}

	mt.changeSets.WithLabelValues("skipped").Inc()
}

// WriteTextfile writes the registry in the Prometheus text format.
func (mt *Metrics) WriteTextfile(path m.Path) error {
	if mt == nil || path == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(string(path), mt.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}

	return nil
}
