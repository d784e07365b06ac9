// Package refparse turns human-written scripture references into validated
// Pericope values, and scans free text for them.
//
// The reference grammar is a book token, then optional comma-separated
// range segments: "GEN", "GEN 3", "GEN 1:1", "GEN 1:1-3", "GEN 1:30-2:2",
// "GEN 1:1,3,5-7". A bare chapter number means verse 1 of that chapter; a
// bare number after an established chapter context is a verse in that
// chapter, and the context carries across segments.
package refparse

import (
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/pericope/core/books"
	refErrors "github.com/FocuswithJustin/pericope/core/errors"
	"github.com/FocuswithJustin/pericope/core/pericope"
)

// rangeList is the parsed form of the range text after the book token.
type rangeList struct {
	Segments []segment `parser:"@@ ( \",\" @@ )*"`
}

// segment is one comma-separated piece: a point or a dash range.
type segment struct {
	Start point  `parser:"@@"`
	End   *point `parser:"( \"-\" @@ )?"`
}

// point is either a bare number or a chapter:verse pair; which one a bare
// number means depends on the chapter context threaded through the parse.
type point struct {
	A int  `parser:"@Number"`
	B *int `parser:"( \":\" @Number )?"`
}

// rangeLexer tokenizes the range text of a reference.
var rangeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// rangeParser parses the range text of a reference.
var rangeParser = participle.MustBuild[rangeList](
	participle.Lexer(rangeLexer),
	participle.Elide("Whitespace"),
)

// Parse resolves a full reference string into a validated Pericope.
// Blank input fails with ParseError; an unresolvable book token with
// InvalidBookError; out-of-bound endpoints with InvalidChapterError or
// InvalidVerseError naming the offending book, chapter, and verse.
func Parse(text string) (*pericope.Pericope, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &refErrors.ParseError{Message: "empty reference"}
	}

	// Split on the first whitespace run; the range text defaults to "1:1".
	bookToken := trimmed
	rangeText := "1:1"
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		bookToken = trimmed[:i]
		rangeText = strings.TrimSpace(trimmed[i:])
	}

	book := books.FindByName(bookToken)
	if book == nil {
		return nil, &refErrors.InvalidBookError{Token: bookToken}
	}

	parsed, err := rangeParser.ParseString("", rangeText)
	if err != nil {
		return nil, &refErrors.ParseError{Input: text, Message: err.Error()}
	}

	ranges, err := resolveSegments(parsed.Segments)
	if err != nil {
		return nil, err
	}
	return pericope.New(book, ranges...)
}

// resolveSegments applies the chapter-context rules. currentChapter is the
// single piece of parser state: nil until the first segment establishes a
// chapter, updated by every explicit chapter mention.
func resolveSegments(segments []segment) ([]pericope.Range, error) {
	var ranges []pericope.Range
	var currentChapter *int

	for _, seg := range segments {
		var startCh, startVs int
		switch {
		case seg.Start.B != nil:
			startCh, startVs = seg.Start.A, *seg.Start.B
		case currentChapter == nil:
			// A bare leading number is a chapter with verse 1.
			startCh, startVs = seg.Start.A, 1
		default:
			startCh, startVs = *currentChapter, seg.Start.A
		}
		currentChapter = &startCh

		endCh, endVs := startCh, startVs
		if seg.End != nil {
			if seg.End.B != nil {
				endCh, endVs = seg.End.A, *seg.End.B
				currentChapter = &endCh
			} else {
				endVs = seg.End.A
			}
		}

		ranges = append(ranges, pericope.Range{
			StartChapter: startCh, StartVerse: startVs,
			EndChapter: endCh, EndVerse: endVs,
		})
	}
	return ranges, nil
}
