// Package metrics counts session activity with Prometheus collectors on a
// private registry. The CLI dumps the registry to a node_exporter textfile
// and seeds the next invocation from it, so the totals run across commands.
package metrics

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/twisty/session"
)

const (
	metricsNamespace = "twisty"
	sessionSubsystem = "session"
)

// Metrics holds the session collectors for one puzzle family.
type Metrics struct {
	family   string
	registry *prometheus.Registry

	MovesTotal            *prometheus.CounterVec
	ScramblesTotal        *prometheus.CounterVec
	ResetsTotal           *prometheus.CounterVec
	HistoryUnderflowTotal *prometheus.CounterVec
}

// New registers the collectors on a fresh registry. family labels every
// sample.
func New(family string) *Metrics {
	m := &Metrics{
		family:   family,
		registry: prometheus.NewRegistry(),
		MovesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: sessionSubsystem,
				Name:      "moves_total",
				Help:      "History moves by family and kind (twist, undo, redo, inverse)",
			},
			[]string{"family", "kind"},
		),
		ScramblesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: sessionSubsystem,
				Name:      "scrambles_total",
				Help:      "Scrambles by family",
			},
			[]string{"family"},
		),
		ResetsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: sessionSubsystem,
				Name:      "resets_total",
				Help:      "Resets by family",
			},
			[]string{"family"},
		),
		HistoryUnderflowTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: sessionSubsystem,
				Name:      "history_underflow_total",
				Help:      "Undo, redo or inverse requests refused on an empty stack",
			},
			[]string{"family", "op"},
		),
	}
	m.registry.MustRegister(m.MovesTotal, m.ScramblesTotal, m.ResetsTotal, m.HistoryUnderflowTotal)

	return m
}

// Observe implements session.Observer.
func (m *Metrics) Observe(e session.Event) {
	if e.Err != nil {
		m.HistoryUnderflowTotal.WithLabelValues(m.family, string(e.Op)).Inc()
		return
	}
	switch e.Op {
	case session.OpScramble:
		m.ScramblesTotal.WithLabelValues(m.family).Inc()
	case session.OpReset:
		m.ResetsTotal.WithLabelValues(m.family).Inc()
	default:
		m.MovesTotal.WithLabelValues(m.family, string(e.Op)).Inc()
	}
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Restore adds the counter values found in a textfile written earlier by
// WriteTextfile. Samples of every family are kept. A missing file is not
// an error; unknown metrics are skipped.
func (m *Metrics) Restore(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("metrics: restore %s: %w", path, err)
	}
	defer f.Close()

	vecs := map[string]*prometheus.CounterVec{
		metricName("moves_total"):             m.MovesTotal,
		metricName("scrambles_total"):         m.ScramblesTotal,
		metricName("resets_total"):            m.ResetsTotal,
		metricName("history_underflow_total"): m.HistoryUnderflowTotal,
	}
	dec := expfmt.NewDecoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for {
		var mf dto.MetricFamily
		if err := dec.Decode(&mf); errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("metrics: restore %s: %w", path, err)
		}
		vec, ok := vecs[mf.GetName()]
		if !ok || mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, sample := range mf.GetMetric() {
			labels := make(prometheus.Labels, len(sample.GetLabel()))
			for _, lp := range sample.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			c, err := vec.GetMetricWith(labels)
			if err != nil {
				return fmt.Errorf("metrics: restore %s: %s: %w", path, mf.GetName(), err)
			}
			if v := sample.GetCounter().GetValue(); v > 0 {
				c.Add(v)
			}
		}
	}
}

func metricName(name string) string {
	return prometheus.BuildFQName(metricsNamespace, sessionSubsystem, name)
}

// WriteTextfile writes the registry in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
