package assistant

import (
	"fmt"
	"strings"

	"github.com/lexhaven/lexidoc/internal/entity"
	"github.com/lexhaven/lexidoc/internal/retrieval"
)

// fallbackExamples caps how many values the local summary lists per
// entity category.
const fallbackExamples = 5

// BasicSummary derives a structured summary from raw text and
// previously-extracted entities without calling any remote service.
// It is fully deterministic: identical inputs produce identical output.
func BasicSummary(documentText string, entities entity.Entities) string {
	words := strings.Fields(documentText)
	sentences := retrieval.SplitPassages(documentText)

	var sb strings.Builder
	sb.WriteString("DOCUMENT ANALYSIS SUMMARY\n\n")
	fmt.Fprintf(&sb, "Word count: %d\n", len(words))
	fmt.Fprintf(&sb, "Sentence count: %d\n", len(sentences))

	for _, cat := range entity.Categories {
		values := entities[cat]
		if len(values) == 0 {
			continue
		}
		if len(values) > fallbackExamples {
			values = values[:fallbackExamples]
		}
		fmt.Fprintf(&sb, "\n%s:\n", categoryLabel(cat))
		for _, v := range values {
			fmt.Fprintf(&sb, "  - %s\n", v)
		}
	}

	sb.WriteString("\nNote: AI summarization is currently unavailable; this is an automated structural analysis of the document.")
	return sb.String()
}

// contextDump is the chat-path degraded output: the selected passages,
// verbatim, with a short preamble. The chat path intentionally has no
// structured local generator parallel to BasicSummary.
func contextDump(passages []string) string {
	var sb strings.Builder
	sb.WriteString("AI responses are currently unavailable. The passages most relevant to your question are:\n\n")
	sb.WriteString(strings.Join(passages, "\n\n"))
	return sb.String()
}

func categoryLabel(cat string) string {
	words := strings.Split(cat, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
