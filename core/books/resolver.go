package books

import (
	"strings"

	"github.com/agext/levenshtein"
)

// maxEditDistance is the largest Levenshtein distance a fuzzy match accepts.
const maxEditDistance = 2

// minFuzzyLength keeps short inputs from fuzzy-matching everything;
// "a" is within distance 2 of dozens of aliases.
const minFuzzyLength = 3

// FindByCode returns the book with the given canonical code, ignoring case.
func FindByCode(code string) *Book {
	return byCode[strings.ToUpper(strings.TrimSpace(code))]
}

// FindByNumber returns the book with the given ordinal number (1..66).
func FindByNumber(n int) *Book {
	return byNumber[n]
}

// FindByName resolves free-form book text. An exact case-folded alias hit
// wins immediately; otherwise inputs of at least three characters are
// fuzzy-matched against every alias, keeping the first alias (registry
// order) with the smallest edit distance, provided that distance is at most
// maxEditDistance. Returns nil when nothing qualifies.
func FindByName(text string) *Book {
	folded := strings.ToLower(strings.TrimSpace(text))
	if folded == "" {
		return nil
	}
	if b, ok := aliasIndex[folded]; ok {
		return b
	}
	if len(folded) < minFuzzyLength {
		return nil
	}

	var best *Book
	bestDistance := maxEditDistance + 1
	for _, entry := range aliasOrder {
		if d := levenshtein.Distance(folded, entry.alias, nil); d < bestDistance {
			bestDistance = d
			best = entry.book
		}
	}
	return best
}
