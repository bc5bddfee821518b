// Package stats aggregates per-operation call counts and timings, backing
// both the legacy JSON /getstats payload and the Prometheus /metrics
// endpoint from the same observations.
package stats

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "segment"
	metricsSubsystem = "operation"
)

// OperationStats is the per-operation shape rendered into the JSON stats
// payload.
type OperationStats struct {
	Count   int64   `json:"count"`
	TotalMs float64 `json:"totalMs"`
	AvgMs   float64 `json:"avgMs"`
}

type operationTotals struct {
	count   int64
	totalMs float64
}

// Stats records call counts and cumulative elapsed time per named
// operation, and feeds the same observations into a Prometheus histogram
// and counter.
type Stats struct {
	mu    sync.RWMutex
	byOp  map[string]*operationTotals

	durationSeconds *prometheus.HistogramVec
	callsTotal      *prometheus.CounterVec
}

// New creates a Stats collector and registers its Prometheus metrics
// against reg. A nil reg registers against the default registerer.
func New(reg prometheus.Registerer) *Stats {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Stats{
		byOp: make(map[string]*operationTotals),
		durationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "duration_seconds",
			Help:      "Elapsed time of a segment operation, by operation name.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		callsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "total",
			Help:      "Total number of segment operations, by operation name.",
		}, []string{"operation"}),
	}
}

// Observe records one call to name taking elapsed.
func (s *Stats) Observe(name string, elapsed time.Duration) {
	s.durationSeconds.WithLabelValues(name).Observe(elapsed.Seconds())
	s.callsTotal.WithLabelValues(name).Inc()

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byOp[name]
	if !ok {
		t = &operationTotals{}
		s.byOp[name] = t
	}
	t.count++
	t.totalMs += float64(elapsed.Microseconds()) / 1000.0
}

// Snapshot returns a point-in-time copy of every operation's totals, for
// JSON rendering.
func (s *Stats) Snapshot() map[string]OperationStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]OperationStats, len(s.byOp))
	for name, t := range s.byOp {
		avg := 0.0
		if t.count > 0 {
			avg = t.totalMs / float64(t.count)
		}
		out[name] = OperationStats{Count: t.count, TotalMs: t.totalMs, AvgMs: avg}
	}
	return out
}
