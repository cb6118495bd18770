package provider

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Chain tries adapters in priority order until one succeeds. A later
// provider is only tried after the previous one is confirmed failed,
// with exactly one attempt per provider per call and no backoff. The
// chain is traversed at most once per call.
type Chain struct {
	adapters []Adapter
	timeout  time.Duration
	stats    *Stats
	log      *slog.Logger
}

// NewChain builds a chain over the given adapters. A nil stats or
// logger is replaced with a no-op equivalent; timeout bounds each
// individual provider attempt.
func NewChain(adapters []Adapter, timeout time.Duration, stats *Stats, log *slog.Logger) *Chain {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if stats == nil {
		stats = NewStats(time.Hour)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Chain{
		adapters: adapters,
		timeout:  timeout,
		stats:    stats,
		log:      log,
	}
}

// Len returns the number of configured adapters.
func (c *Chain) Len() int { return len(c.adapters) }

// Generate runs the fallback chain for one prompt. It returns the
// generated text and the name of the provider that produced it, or
// ErrExhausted after the last adapter fails. A provider returning HTTP
// success with an empty payload is treated identically to a hard
// failure and advances the chain.
func (c *Chain) Generate(ctx context.Context, prompt, system string) (string, string, error) {
	for _, a := range c.adapters {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		start := time.Now()
		text, err := a.Generate(attemptCtx, prompt, system)
		cancel()
		elapsed := time.Since(start).Milliseconds()

		switch {
		case err != nil:
			c.stats.Record(a.Name(), elapsed, false)
			c.log.Warn("provider attempt failed",
				"provider", a.Name(),
				"duration_ms", elapsed,
				"reason", err.Error(),
			)
		case strings.TrimSpace(text) == "":
			c.stats.Record(a.Name(), elapsed, false)
			c.log.Warn("provider attempt failed",
				"provider", a.Name(),
				"duration_ms", elapsed,
				"reason", "empty response",
			)
		default:
			c.stats.Record(a.Name(), elapsed, true)
			c.log.Info("provider attempt succeeded",
				"provider", a.Name(),
				"duration_ms", elapsed,
			)
			return text, a.Name(), nil
		}
	}

	c.log.Warn("all providers failed", "providers", len(c.adapters))
	return "", "", ErrExhausted
}
