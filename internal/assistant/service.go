// Package assistant assembles prompts from document text and retrieval
// output, drives the provider chain, and degrades to local output when
// every provider fails. Every code path returns a renderable string.
package assistant

import (
	"context"
	"io"
	"log/slog"

	"github.com/lexhaven/lexidoc/internal/entity"
	"github.com/lexhaven/lexidoc/internal/provider"
	"github.com/lexhaven/lexidoc/internal/retrieval"
)

// LocalModel names the degraded-mode generator in API responses.
const LocalModel = "local-fallback"

// Service is the document assistant core shared by the summarization
// and chat endpoints.
type Service struct {
	chain        *provider.Chain
	log          *slog.Logger
	promptBudget int
	topK         int
}

// NewService builds the assistant over a provider chain. promptBudget
// and topK fall back to their defaults when non-positive.
func NewService(chain *provider.Chain, promptBudget, topK int, log *slog.Logger) *Service {
	if promptBudget <= 0 {
		promptBudget = DefaultPromptBudget
	}
	if topK <= 0 {
		topK = retrieval.DefaultTopK
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		chain:        chain,
		log:          log,
		promptBudget: promptBudget,
		topK:         topK,
	}
}

// Summarize produces a natural-language summary of documentText and
// the name of the provider that produced it. When the chain is
// exhausted it returns the deterministic local summary built from the
// raw text and extracted entities; it never returns an empty string.
func (s *Service) Summarize(ctx context.Context, documentText string, entities entity.Entities) (string, string) {
	prompt := summaryPrompt(documentText, s.promptBudget)
	text, model, err := s.chain.Generate(ctx, prompt, summarySystem)
	if err != nil {
		s.log.Info("degrading to local summary", "reason", err.Error())
		return BasicSummary(documentText, entities), LocalModel
	}
	return text, model
}

// Chat answers a question about documentText using the top-K most
// relevant passages as context. When the chain is exhausted it returns
// a dump of the selected passages rather than a generated answer.
func (s *Service) Chat(ctx context.Context, message, documentText string) (string, string) {
	passages := retrieval.SelectRelevant(message, documentText, s.topK)
	prompt := chatPrompt(passages, message, s.promptBudget)
	text, model, err := s.chain.Generate(ctx, prompt, chatSystem)
	if err != nil {
		s.log.Info("degrading to context dump", "reason", err.Error())
		return contextDump(passages), LocalModel
	}
	return text, model
}
