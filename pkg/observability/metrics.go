package observability

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/guess/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts session activity.
type Metrics struct {
	Transitions *prometheus.CounterVec
	Guesses     *prometheus.CounterVec
	Rejections  prometheus.Counter

	registry *prometheus.Registry
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg gets a private registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guess_phase_transitions_total",
				Help: "Total number of phase transitions",
			},
			[]string{"from", "to"},
		),
		Guesses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guess_guesses_total",
				Help: "Total number of compared guesses by result",
			},
			[]string{"result"},
		),
		Rejections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guess_rejected_inputs_total",
			Help: "Total number of inputs that were not a number",
		}),
		registry: reg,
	}
	reg.MustRegister(m.Transitions, m.Guesses, m.Rejections)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns lifecycle hooks feeding the counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			from := string(e.From)
			if from == "" {
				from = "start"
			}
			m.Transitions.WithLabelValues(from, string(e.To)).Inc()
		},
		OnGuess: func(_ context.Context, e *domain.GuessEvent) {
			m.Guesses.WithLabelValues(e.Result.String()).Inc()
		},
		OnReject: func(context.Context, *domain.RejectEvent) {
			m.Rejections.Inc()
		},
	}
}

// Summary flattens every counter on the registry into "name{labels}=value"
// pairs, sorted, for logging at the end of a session.
func (m *Metrics) Summary() ([]string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var out []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if metric.GetCounter() == nil {
				continue
			}
			var labels []string
			for _, lp := range metric.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			out = append(out, fmt.Sprintf("%s=%g", name, metric.GetCounter().GetValue()))
		}
	}
	sort.Strings(out)
	return out, nil
}
