package batch

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	evaluations *prometheus.CounterVec
	cacheHits   prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fuzzy",
			Subsystem: "batch",
			Name:      "evaluations_total",
			Help:      "Number of evaluated cases by result.",
		}, []string{"result"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fuzzy",
			Subsystem: "batch",
			Name:      "cache_hits_total",
			Help:      "Number of cases answered from the result cache.",
		}),
	}
	var err error
	if m.evaluations, err = register(reg, m.evaluations); err != nil {
		return nil, err
	}
	if m.cacheHits, err = register(reg, m.cacheHits); err != nil {
		return nil, err
	}
	return m, nil
}

// register returns the already registered collector if an identical one exists.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *metrics) observe(err error) {
	if m == nil {
		return
	}
	label := "ok"
	if err != nil {
		label = "error"
	}
	m.evaluations.WithLabelValues(label).Inc()
}

func (m *metrics) cacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}
