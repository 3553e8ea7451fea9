// Package metrics exposes Prometheus metrics for solver runs.
//
// A Collector is fed by stepper hooks:
//
//	c := metrics.NewCollector(prometheus.NewRegistry())
//	stepper.WithOnStep(c.OnStep)
//	stepper.WithOnAbort(c.OnAbort)
//
// Batch runs have no scrape endpoint; WriteTextfile dumps the registry in
// the node-exporter textfile format instead.
package metrics

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/fracpde/stepper"
)

const namespace = "fracpde"

// Collector holds the solver metrics.
type Collector struct {
	reg prometheus.Gatherer

	// StepsTotal counts completed time steps.
	StepsTotal prometheus.Counter

	// StepDurationSeconds observes wall time per step.
	StepDurationSeconds prometheus.Histogram

	// AbortsTotal counts runs aborted by a solver failure.
	AbortsTotal prometheus.Counter

	// SimulatedTime is t of the last written level.
	SimulatedTime prometheus.Gauge

	// MaxAbsValue is max |U[n+1, j]| of the last written level.
	MaxAbsValue prometheus.Gauge
}

// NewCollector registers the solver metrics on reg.
func NewCollector(reg *prometheus.Registry) *Collector {
	f := promauto.With(reg)

	return &Collector{
		reg: reg,
		StepsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Completed time steps.",
		}),
		StepDurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Wall time of one time step (history, assembly, solve).",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		AbortsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aborts_total",
			Help:      "Runs aborted because the linear system could not be solved.",
		}),
		SimulatedTime: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "simulated_time",
			Help:      "Time coordinate of the last computed level.",
		}),
		MaxAbsValue: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "level_max_abs",
			Help:      "Largest absolute solution value on the last computed level.",
		}),
	}
}

// OnStep is a stepper.WithOnStep callback.
func (c *Collector) OnStep(e stepper.StepEvent) {
	c.StepsTotal.Inc()
	c.StepDurationSeconds.Observe(e.Duration.Seconds())
	c.SimulatedTime.Set(e.Time)

	peak := 0.0
	for _, u := range e.Row {
		peak = math.Max(peak, math.Abs(u))
	}
	c.MaxAbsValue.Set(peak)
}

// OnAbort is a stepper.WithOnAbort callback.
func (c *Collector) OnAbort(int, error) { c.AbortsTotal.Inc() }

// WriteTextfile writes the registry to path in the Prometheus text format.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.reg)
}
