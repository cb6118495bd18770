package entity

import (
	"strings"
	"testing"
)

const sampleContract = `This Services Agreement is entered into by John Smith and Acme Widgets Inc.
on January 15, 2024. Per Section 4.2, payment of $12,500.00 is due within 30 days,
with interest of 1.5% per month on late balances. Mary Jones of Brightline Partners
countersigned on 02/01/2024. See Exhibit A and Article IV for termination terms.
A late fee of $250 applies. Contact repeated: John Smith, John Smith.`

func TestExtract_Categories(t *testing.T) {
	got := Extract(sampleContract)

	tests := []struct {
		category string
		want     string
	}{
		{"parties", "John Smith"},
		{"parties", "Mary Jones"},
		{"organizations", "Acme Widgets Inc"},
		{"dates", "January 15, 2024"},
		{"dates", "02/01/2024"},
		{"monetary_amounts", "$12,500.00"},
		{"monetary_amounts", "$250"},
		{"percentages", "1.5%"},
		{"citations", "Section 4.2"},
		{"citations", "Article IV"},
	}
	for _, tt := range tests {
		if !containsMatch(got[tt.category], tt.want) {
			t.Errorf("category %q: expected a value containing %q, got %v",
				tt.category, tt.want, got[tt.category])
		}
	}
}

func TestExtract_DeduplicatesValues(t *testing.T) {
	got := Extract(sampleContract)
	count := 0
	for _, v := range got["parties"] {
		if v == "John Smith" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected John Smith once, got %d occurrences", count)
	}
}

func TestExtract_OmitsEmptyCategories(t *testing.T) {
	got := Extract("nothing here matches any catalog pattern")
	for cat, values := range got {
		t.Errorf("expected no categories, got %q = %v", cat, values)
	}
}

func TestExtract_PreservesOrderOfFirstAppearance(t *testing.T) {
	got := Extract("Fee one is $100 and fee two is $900 and fee three is $100.")
	amounts := got["monetary_amounts"]
	if len(amounts) != 2 {
		t.Fatalf("expected 2 deduplicated amounts, got %v", amounts)
	}
	if amounts[0] != "$100" || amounts[1] != "$900" {
		t.Errorf("expected order of first appearance, got %v", amounts)
	}
}

func TestExtract_CapsValuesPerCategory(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString("$")
		sb.WriteString(strings.Repeat("9", i+1))
		sb.WriteString(" ")
	}
	got := Extract(sb.String())
	if len(got["monetary_amounts"]) > maxPerCategory {
		t.Errorf("expected at most %d values, got %d", maxPerCategory, len(got["monetary_amounts"]))
	}
}

func containsMatch(values []string, want string) bool {
	for _, v := range values {
		if strings.Contains(v, want) {
			return true
		}
	}
	return false
}
