package assistant

import (
	"fmt"
	"strings"
)

// DefaultPromptBudget caps how many characters of document-derived
// content are placed in a prompt before it is sent to a provider.
const DefaultPromptBudget = 6000

const summarySystem = `You are a legal document assistant. Summarize the document for a non-lawyer: purpose, parties, key obligations, important dates and amounts, and notable risks. Be concise and factual. Do not give legal advice.`

const chatSystem = `You are a legal document assistant. Answer the user's question using only the document context provided. If the context does not contain the answer, say so plainly. Do not give legal advice.`

// summaryPrompt builds the summarization prompt: fixed instructions
// plus the truncated raw document text.
func summaryPrompt(documentText string, budget int) string {
	var sb strings.Builder
	sb.WriteString("Summarize the following legal document.\n\n---\n")
	sb.WriteString(clip(documentText, budget))
	sb.WriteString("\n---")
	return sb.String()
}

// chatPrompt builds the chat prompt: the selected passages joined with
// blank-line separators as document context, then the literal user
// question.
func chatPrompt(passages []string, question string, budget int) string {
	context := clip(strings.Join(passages, "\n\n"), budget)
	return fmt.Sprintf("Document context:\n\n%s\n\nQuestion: %s", context, question)
}

func clip(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
