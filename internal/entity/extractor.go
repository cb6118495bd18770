// Package entity extracts legal entities from document text with a
// regular-expression catalog. Matches are deduplicated, kept in order
// of first appearance, and capped per category.
package entity

import "regexp"

// Entities maps a category name to its extracted values.
type Entities map[string][]string

// maxPerCategory bounds how many values a single category retains.
const maxPerCategory = 20

// Categories lists the catalog's category names in presentation order.
var Categories = []string{
	"parties",
	"organizations",
	"dates",
	"monetary_amounts",
	"percentages",
	"citations",
}

var catalog = map[string]*regexp.Regexp{
	// Two or more capitalized words, the usual shape of a person's name.
	"parties": regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z]\.)? [A-Z][a-z]+\b`),

	"organizations": regexp.MustCompile(`\b[A-Z][A-Za-z&']*(?: [A-Z][A-Za-z&']*)* (?:Incorporated|Inc|LLC|LLP|Ltd|Corporation|Corp|Company|Partners|Associates)\b\.?`),

	"dates": regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b|\b\d{1,2}/\d{1,2}/\d{2,4}\b`),

	"monetary_amounts": regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d{1,2})?(?:\s?(?:million|billion|thousand))?\b`),

	"percentages": regexp.MustCompile(`\b\d+(?:\.\d+)?\s?(?:%|percent\b)`),

	"citations": regexp.MustCompile(`\b(?:Section|Article|Clause|Exhibit|Schedule|Paragraph)\s+[0-9IVXLC]+(?:\.\d+)*\b`),
}

// Extract runs the full catalog over text. Categories with no matches
// are omitted from the result.
func Extract(text string) Entities {
	out := make(Entities)
	for _, cat := range Categories {
		values := extractCategory(catalog[cat], text)
		if len(values) > 0 {
			out[cat] = values
		}
	}
	return out
}

func extractCategory(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	var values []string
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		values = append(values, m)
		if len(values) == maxPerCategory {
			break
		}
	}
	return values
}
