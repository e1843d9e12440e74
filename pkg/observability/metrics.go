package observability

import (
	"strconv"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "turing"

// Metrics groups the collectors shared by every instrumented engine.
type Metrics struct {
	Steps    *prometheus.CounterVec
	Halts    *prometheus.CounterVec
	RunSteps *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Transitions applied, by machine.",
		}, []string{"machine"}),
		Halts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "halts_total",
			Help:      "Runs that halted, by machine and acceptance.",
		}, []string{"machine", "accepted"}),
		RunSteps: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_steps",
			Help:      "Transitions applied per halted run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"machine"}),
	}
	if reg != nil {
		reg.MustRegister(m.Steps, m.Halts, m.RunSteps)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m under the given machine label.
func (m *Metrics) Hooks(machine string) domain.LifecycleHooks {
	steps := m.Steps.WithLabelValues(machine)
	runSteps := m.RunSteps.WithLabelValues(machine)

	return domain.LifecycleHooks{
		OnStep: func(*domain.StepEvent) {
			steps.Inc()
		},
		OnHalt: func(e *domain.HaltEvent) {
			m.Halts.WithLabelValues(machine, strconv.FormatBool(e.Accepting)).Inc()
			runSteps.Observe(float64(e.Steps))
		},
	}
}
