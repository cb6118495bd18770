package retrieval

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// DefaultTopK is the number of passages returned when the caller
	// does not specify a count.
	DefaultTopK = 5

	// minPassageLen filters out sentence fragments after trimming.
	minPassageLen = 30

	// fallbackPrefixLen is the size of the pseudo-passage returned for
	// passage-poor or malformed text.
	fallbackPrefixLen = 1000
)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// RankedPassage pairs a passage with its similarity to a query.
type RankedPassage struct {
	Text  string
	Score float64
}

// SelectRelevant returns the topK passages of documentText most similar
// to query, highest first. Ties keep document order. The result is never
// empty: when the document has no qualifying passages the first 1000
// characters of the raw text are returned as a single pseudo-passage, so
// downstream consumers always receive at least one string.
func SelectRelevant(query, documentText string, topK int) []string {
	if topK <= 0 {
		topK = DefaultTopK
	}

	ranked := RankPassages(query, documentText)
	if len(ranked) == 0 {
		return []string{prefix(documentText, fallbackPrefixLen)}
	}

	if topK > len(ranked) {
		topK = len(ranked)
	}
	out := make([]string, topK)
	for i := 0; i < topK; i++ {
		out[i] = ranked[i].Text
	}
	return out
}

// RankPassages scores every qualifying passage of documentText against
// the query embedding and returns them sorted by descending similarity.
// The sort is stable so equal scores preserve document order.
func RankPassages(query, documentText string) []RankedPassage {
	passages := SplitPassages(documentText)
	if len(passages) == 0 {
		return nil
	}

	qv := Embed(query)
	ranked := make([]RankedPassage, len(passages))
	for i, p := range passages {
		ranked[i] = RankedPassage{Text: p, Score: Cosine(qv, Embed(p))}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// SplitPassages splits text on sentence terminators and discards
// trimmed fragments shorter than the minimum passage length.
func SplitPassages(text string) []string {
	var passages []string
	for _, part := range sentenceEnd.Split(text, -1) {
		part = strings.TrimSpace(part)
		if len(part) >= minPassageLen {
			passages = append(passages, part)
		}
	}
	return passages
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
