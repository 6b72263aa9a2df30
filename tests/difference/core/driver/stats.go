package core

import (
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

// Stats counts the actions, events and traces seen by a Driver or a
// Generator. The counters live in a private registry.
type Stats struct {
	registry *prometheus.Registry

	traces  prometheus.Counter
	actions *prometheus.CounterVec
	events  *prometheus.CounterVec
}

func NewStats() *Stats {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Stats{
		registry: registry,
		traces: factory.NewCounter(prometheus.CounterOpts{
			Name: "ccv_model_traces_total",
			Help: "The total number of traces run",
		}),
		actions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ccv_model_actions_total",
				Help: "The total number of actions applied, by kind",
			},
			[]string{"kind"},
		),
		events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ccv_model_events_total",
				Help: "The total number of events emitted, by event",
			},
			[]string{"event"},
		),
	}
}

func (s *Stats) Registry() *prometheus.Registry {
	return s.registry
}

func (s *Stats) ObserveTrace() {
	s.traces.Inc()
}

func (s *Stats) ObserveAction(kind string) {
	s.actions.WithLabelValues(kind).Inc()
}

func (s *Stats) ObserveEvents(events []types.Event) {
	for _, e := range events {
		s.events.WithLabelValues(string(e)).Inc()
	}
}

// Counts returns every counter value keyed by metric name, followed by the
// label value for labelled counters.
func (s *Stats) Counts() (map[string]float64, error) {
	families, err := s.registry.Gather()
	if err != nil {
		return nil, err
	}
	ret := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, l := range m.GetLabel() {
				key += "/" + l.GetValue()
			}
			ret[key] = m.GetCounter().GetValue()
		}
	}
	return ret, nil
}

// Report writes the counters to w, one per line, sorted by key.
func (s *Stats) Report(w io.Writer) error {
	counts, err := s.Counts()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s %v\n", k, counts[k]); err != nil {
			return err
		}
	}
	return nil
}
