package provider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeAdapter is a scripted provider for chain tests.
type fakeAdapter struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeAdapter) Name() string { return f.name }

func (f *fakeAdapter) Generate(ctx context.Context, prompt, system string) (string, error) {
	f.calls++
	return f.text, f.err
}

func newTestChain(adapters ...Adapter) *Chain {
	return NewChain(adapters, time.Second, NewStats(time.Hour), nil)
}

func TestChain_FirstProviderSucceeds(t *testing.T) {
	first := &fakeAdapter{name: "first", text: "answer"}
	second := &fakeAdapter{name: "second", text: "unused"}
	chain := newTestChain(first, second)

	text, model, err := chain.Generate(context.Background(), "prompt", "system")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "answer" {
		t.Errorf("expected %q, got %q", "answer", text)
	}
	if model != "first" {
		t.Errorf("expected provider %q, got %q", "first", model)
	}
	if second.calls != 0 {
		t.Errorf("second provider called %d times; chain must be sequential and short-circuit", second.calls)
	}
}

func TestChain_AdvancesPastFailures(t *testing.T) {
	first := &fakeAdapter{name: "first", err: errors.New("status 503")}
	second := &fakeAdapter{name: "second", err: errors.New("connection refused")}
	third := &fakeAdapter{name: "third", text: "recovered"}
	chain := newTestChain(first, second, third)

	text, model, err := chain.Generate(context.Background(), "prompt", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "recovered" || model != "third" {
		t.Errorf("expected third provider to answer, got %q from %q", text, model)
	}
	if first.calls != 1 || second.calls != 1 || third.calls != 1 {
		t.Errorf("expected exactly one attempt per provider, got %d/%d/%d",
			first.calls, second.calls, third.calls)
	}
}

func TestChain_EmptyResponseAdvancesChain(t *testing.T) {
	// HTTP success with an empty payload is treated identically to a
	// hard failure.
	first := &fakeAdapter{name: "first", text: "   "}
	second := &fakeAdapter{name: "second", text: "real answer"}
	chain := newTestChain(first, second)

	text, model, err := chain.Generate(context.Background(), "prompt", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "real answer" || model != "second" {
		t.Errorf("expected second provider to answer, got %q from %q", text, model)
	}
}

func TestChain_ExhaustionReturnsSentinel(t *testing.T) {
	first := &fakeAdapter{name: "first", err: errors.New("boom")}
	second := &fakeAdapter{name: "second", text: ""}
	chain := newTestChain(first, second)

	_, _, err := chain.Generate(context.Background(), "prompt", "")
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestChain_NoAdaptersIsImmediatelyExhausted(t *testing.T) {
	chain := newTestChain()
	_, _, err := chain.Generate(context.Background(), "prompt", "")
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestChain_NoRetriesWithinProvider(t *testing.T) {
	failing := &fakeAdapter{name: "flaky", err: errors.New("rate limited")}
	chain := newTestChain(failing)

	chain.Generate(context.Background(), "prompt", "")
	if failing.calls != 1 {
		t.Errorf("expected a single attempt, got %d", failing.calls)
	}
}

func TestChain_RecordsAttemptStats(t *testing.T) {
	stats := NewStats(time.Hour)
	first := &fakeAdapter{name: "first", err: errors.New("down")}
	second := &fakeAdapter{name: "second", text: "ok"}
	chain := NewChain([]Adapter{first, second}, time.Second, stats, nil)

	chain.Generate(context.Background(), "prompt", "")

	snap := stats.Snapshot()
	if snap["first"].Failures != 1 {
		t.Errorf("expected 1 failure for first, got %+v", snap["first"])
	}
	if snap["second"].Successes != 1 {
		t.Errorf("expected 1 success for second, got %+v", snap["second"])
	}
}
