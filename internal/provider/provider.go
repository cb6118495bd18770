// Package provider implements the ordered text-generation fallback
// chain: a declarative list of provider adapters tried sequentially,
// one attempt each, until one returns usable text.
package provider

import (
	"context"
	"errors"
)

// Adapter is a single remote text-generation provider. Generate sends
// one request and returns the generated text, or an error for any
// unreachable host, non-2xx status, or empty/unparseable payload.
type Adapter interface {
	Name() string
	Generate(ctx context.Context, prompt, system string) (string, error)
}

// ErrExhausted is returned by Chain.Generate when every configured
// adapter has failed. Callers map it to a local degraded-mode output;
// it is never surfaced to the end user as an error.
var ErrExhausted = errors.New("provider chain exhausted")

// Generation defaults shared by the adapters.
const (
	defaultMaxTokens   = 1024
	defaultTemperature = 0.3
)
