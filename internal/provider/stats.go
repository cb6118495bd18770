package provider

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	timestamp  time.Time
	durationMs int64
	ok         bool
}

// ProviderSnapshot is a point-in-time aggregate of one provider's
// recent attempts.
type ProviderSnapshot struct {
	Attempts  int     `json:"attempts"`
	Successes int     `json:"successes"`
	Failures  int     `json:"failures"`
	MinMs     int64   `json:"min_ms"`
	MaxMs     int64   `json:"max_ms"`
	AvgMs     float64 `json:"avg_ms"`
	P50Ms     float64 `json:"p50_ms"`
	P95Ms     float64 `json:"p95_ms"`
	P99Ms     float64 `json:"p99_ms"`
}

// Stats tracks per-provider attempt outcomes and latencies within a
// rolling window. Diagnostic only; not part of the chain's contract.
type Stats struct {
	mu      sync.Mutex
	samples map[string][]sample
	maxAge  time.Duration
}

func NewStats(maxAge time.Duration) *Stats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Stats{
		samples: make(map[string][]sample),
		maxAge:  maxAge,
	}
}

// Record adds one attempt outcome for the named provider.
func (s *Stats) Record(provider string, durationMs int64, ok bool) {
	if durationMs < 0 {
		durationMs = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.samples[provider] = append(s.samples[provider], sample{
		timestamp:  now,
		durationMs: durationMs,
		ok:         ok,
	})
}

// Snapshot aggregates the current window per provider.
func (s *Stats) Snapshot() map[string]ProviderSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	out := make(map[string]ProviderSnapshot, len(s.samples))
	for provider, samples := range s.samples {
		if len(samples) == 0 {
			continue
		}

		values := make([]int64, 0, len(samples))
		var sum int64
		successes := 0
		for _, sm := range samples {
			values = append(values, sm.durationMs)
			sum += sm.durationMs
			if sm.ok {
				successes++
			}
		}
		sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

		out[provider] = ProviderSnapshot{
			Attempts:  len(values),
			Successes: successes,
			Failures:  len(values) - successes,
			MinMs:     values[0],
			MaxMs:     values[len(values)-1],
			AvgMs:     float64(sum) / float64(len(values)),
			P50Ms:     percentile(values, 50),
			P95Ms:     percentile(values, 95),
			P99Ms:     percentile(values, 99),
		}
	}
	return out
}

func (s *Stats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	for provider, samples := range s.samples {
		writeIdx := 0
		for _, sm := range samples {
			if !sm.timestamp.Before(cutoff) {
				samples[writeIdx] = sm
				writeIdx++
			}
		}
		if writeIdx == 0 {
			delete(s.samples, provider)
			continue
		}
		s.samples[provider] = samples[:writeIdx]
	}
}

func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
