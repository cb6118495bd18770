// Package retrieval implements the in-process semantic retrieval core:
// a deterministic hashed bag-of-words embedder, cosine similarity, and
// a top-K passage selector over sentence-split document text.
package retrieval

import (
	"regexp"
	"strings"
)

// Dimension is the fixed length of every embedding vector.
const Dimension = 100

var wordPattern = regexp.MustCompile(`\w+`)

// Embed maps text to a fixed-length frequency vector. The same input
// always produces the same vector: no hash seeding, no randomness.
// Distinct words that hash to the same bucket accumulate additively;
// collisions are accepted lossy compression, not an error. Empty input
// (no word tokens) yields the all-zero vector.
func Embed(text string) []float64 {
	vec := make([]float64, Dimension)

	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		return vec
	}

	freq := make(map[string]int, len(words))
	for _, w := range words {
		freq[w]++
	}

	for w, n := range freq {
		vec[bucket(w)] += float64(n)
	}
	return vec
}

// bucket reduces a word to a vector index using a 32-bit wrapping
// polynomial hash (h = h*31 + charCode). The hash must wrap in int32
// two's-complement arithmetic at every step; abs is taken in int64 so
// MinInt32 maps to a positive value.
func bucket(word string) int {
	var h int32
	for _, r := range word {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v % Dimension)
}
