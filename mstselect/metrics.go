package mstselect

import (
	"errors"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Stats counts how the pixels of the last Compute were resolved.
// Solved includes CacheHits.
type Stats struct {
	Pixels    int64
	Default   int64
	Undefined int64
	Solved    int64
	CacheHits int64
}

// counters are the live per-run tallies, updated from worker goroutines.
type counters struct {
	def, undefined, solved, hits atomic.Int64
}

func (c *counters) snapshot() Stats {
	s := Stats{
		Default:   c.def.Load(),
		Undefined: c.undefined.Load(),
		Solved:    c.solved.Load(),
		CacheHits: c.hits.Load(),
	}
	s.Pixels = s.Default + s.Undefined + s.Solved

	return s
}

// metrics exports run tallies to Prometheus. A nil *metrics discards them.
type metrics struct {
	pixels    *prometheus.CounterVec
	cacheHits prometheus.Counter
}

// Pixel outcome labels.
const (
	outcomeDefault   = "default"
	outcomeUndefined = "undefined"
	outcomeSolved    = "solved"
)

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}
	pixels := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ifgnet",
		Subsystem: "mstselect",
		Name:      "pixels_total",
		Help:      "Pixels processed by outcome",
	}, []string{"outcome"})
	hits := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ifgnet",
		Subsystem: "mstselect",
		Name:      "cache_hits_total",
		Help:      "Per-pixel trees served from the mask cache",
	})

	var err error
	if pixels, err = register(reg, pixels); err != nil {
		return nil, err
	}
	if hits, err = register(reg, hits); err != nil {
		return nil, err
	}

	return &metrics{pixels: pixels, cacheHits: hits}, nil
}

// register adds c to reg, reusing the collector already registered under
// the same descriptor.
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

func (m *metrics) add(s Stats) {
	if m == nil {
		return
	}
	m.pixels.WithLabelValues(outcomeDefault).Add(float64(s.Default))
	m.pixels.WithLabelValues(outcomeUndefined).Add(float64(s.Undefined))
	m.pixels.WithLabelValues(outcomeSolved).Add(float64(s.Solved))
	m.cacheHits.Add(float64(s.CacheHits))
}
