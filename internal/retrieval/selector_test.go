package retrieval

import (
	"strings"
	"testing"
)

const contractDoc = "John Smith signed the agreement. Payment of $500 is due January 1, 2024. The warranty expires after one year."

func TestSelectRelevant_PaymentQuestionRanksPaymentSentenceFirst(t *testing.T) {
	got := SelectRelevant("What payment is due?", contractDoc, 5)
	if len(got) == 0 {
		t.Fatal("expected at least one passage")
	}
	if !strings.Contains(got[0], "$500") {
		t.Errorf("expected top passage to contain %q, got %q", "$500", got[0])
	}
}

func TestSelectRelevant_NeverExceedsTopK(t *testing.T) {
	for _, k := range []int{1, 2, 3, 10} {
		got := SelectRelevant("warranty", contractDoc, k)
		if len(got) > k {
			t.Errorf("topK=%d: got %d passages", k, len(got))
		}
		if len(got) == 0 {
			t.Errorf("topK=%d: expected at least one passage", k)
		}
	}
}

func TestSelectRelevant_PassagesComeFromSentenceSplit(t *testing.T) {
	split := SplitPassages(contractDoc)
	members := make(map[string]bool, len(split))
	for _, p := range split {
		members[p] = true
	}

	for _, p := range SelectRelevant("agreement", contractDoc, 5) {
		if !members[p] {
			t.Errorf("passage %q is not a sentence of the document", p)
		}
	}
}

func TestSelectRelevant_OrderedByNonIncreasingScore(t *testing.T) {
	ranked := RankPassages("What payment is due?", contractDoc)
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("passage %d score %f exceeds predecessor %f", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
}

func TestSelectRelevant_EmptyDocumentReturnsSinglePassage(t *testing.T) {
	got := SelectRelevant("anything", "", 5)
	if len(got) != 1 {
		t.Fatalf("expected length-1 result for empty document, got %d", len(got))
	}
	if got[0] != "" {
		t.Errorf("expected empty pseudo-passage, got %q", got[0])
	}
}

func TestSelectRelevant_UnpunctuatedTextFallsBackToPrefix(t *testing.T) {
	got := SelectRelevant("hello", "hello", 5)
	if len(got) != 1 {
		t.Fatalf("expected length-1 result, got %d", len(got))
	}
	if got[0] != "hello" {
		t.Errorf("expected raw text as pseudo-passage, got %q", got[0])
	}
}

func TestSelectRelevant_LongUnpunctuatedTextTruncatedTo1000(t *testing.T) {
	doc := strings.Repeat("x", 2500)
	got := SelectRelevant("query", doc, 5)
	if len(got) != 1 {
		t.Fatalf("expected length-1 result, got %d", len(got))
	}
	if len(got[0]) != 1000 {
		t.Errorf("expected 1000-char pseudo-passage, got %d chars", len(got[0]))
	}
}

func TestSelectRelevant_ZeroTopKUsesDefault(t *testing.T) {
	doc := strings.Repeat("This sentence is long enough to qualify as a passage. ", 10)
	got := SelectRelevant("sentence", doc, 0)
	if len(got) != DefaultTopK {
		t.Errorf("expected default topK %d, got %d", DefaultTopK, len(got))
	}
}

func TestSplitPassages_DiscardsShortFragments(t *testing.T) {
	doc := "Short. This sentence easily clears the thirty character minimum. No."
	got := SplitPassages(doc)
	if len(got) != 1 {
		t.Fatalf("expected 1 passage, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], "thirty character minimum") {
		t.Errorf("unexpected passage %q", got[0])
	}
}

func TestSplitPassages_TrimsWhitespace(t *testing.T) {
	doc := "   The quick brown fox jumps over the lazy dog today.   "
	got := SplitPassages(doc)
	if len(got) != 1 {
		t.Fatalf("expected 1 passage, got %d", len(got))
	}
	if got[0] != "The quick brown fox jumps over the lazy dog today" {
		t.Errorf("expected trimmed passage without terminator, got %q", got[0])
	}
}

func TestSelectRelevant_StableOrderForTiedScores(t *testing.T) {
	// Two sentences with no token overlap with the query score 0 each;
	// the stable sort must keep their document order.
	doc := "Alpha bravo charlie delta echo foxtrot golf hotel. Zulu yankee xray whiskey victor uniform tango sierra."
	got := SelectRelevant("zephyr obelisk", doc, 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 passages, got %d", len(got))
	}
	if !strings.HasPrefix(got[0], "Alpha") || !strings.HasPrefix(got[1], "Zulu") {
		t.Errorf("tied passages reordered: %v", got)
	}
}
