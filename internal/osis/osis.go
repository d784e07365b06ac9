// Package osis extracts scripture references from OSIS XML documents.
//
// OSIS encodes references in osisID and osisRef attributes using dotted
// identifiers ("Gen.1.1", "Gen.1.1-Gen.1.5"). Extraction converts each
// identifier to the reference grammar and parses it; attributes that do
// not resolve are skipped the same way the free-text scanner skips
// malformed candidates.
package osis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/pericope/core/books"
	"github.com/FocuswithJustin/pericope/core/pericope"
	"github.com/FocuswithJustin/pericope/core/refparse"
	"github.com/FocuswithJustin/pericope/core/versification"
)

var refNodes = xpath.MustCompile(`//*[@osisRef or @osisID]`)

// ExtractRefs parses an OSIS document and returns every resolvable
// reference in document order. Unresolvable attributes are skipped.
func ExtractRefs(r io.Reader) ([]*pericope.Pericope, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing OSIS document: %w", err)
	}

	var found []*pericope.Pericope
	for _, node := range xmlquery.QuerySelectorAll(doc, refNodes) {
		for _, attr := range []string{"osisRef", "osisID"} {
			value := node.SelectAttr(attr)
			if value == "" {
				continue
			}
			// An attribute may carry several space-separated identifiers.
			for _, id := range strings.Fields(value) {
				ref, ok := identifierToReference(id)
				if !ok {
					continue
				}
				p, err := refparse.Parse(ref)
				if err != nil {
					continue
				}
				found = append(found, p)
			}
		}
	}
	return found, nil
}

// identifierToReference converts a dotted OSIS identifier into the
// reference grammar: "Gen.1.1" becomes "GEN 1:1" and
// "Gen.1.1-Gen.1.5" becomes "GEN 1:1-1:5". Book- and chapter-level
// identifiers expand to their full extent ("Gen.2" covers all of
// chapter 2). Multi-book ranges and grains (the "!note" suffix) are
// rejected.
func identifierToReference(id string) (string, bool) {
	if i := strings.IndexByte(id, '!'); i >= 0 {
		id = id[:i]
	}
	parts := strings.SplitN(id, "-", 2)

	book, start, ok := boundText(parts[0], false)
	if !ok {
		return "", false
	}
	if len(parts) == 1 {
		_, end, ok := boundText(parts[0], true)
		if !ok {
			return "", false
		}
		if end == start {
			return book.Code + " " + start, true
		}
		return book.Code + " " + start + "-" + end, true
	}

	endBook, end, ok := boundText(parts[1], true)
	if !ok || !endBook.Equal(book) {
		// One pericope is always scoped to one book.
		return "", false
	}
	return book.Code + " " + start + "-" + end, true
}

// boundText resolves one dotted identifier into a book and a "C:V"
// bound, completing missing parts downward for a start bound and
// upward for an end bound.
func boundText(id string, upper bool) (*books.Book, string, bool) {
	fields := strings.Split(id, ".")
	if len(fields) > 3 || fields[0] == "" {
		return nil, "", false
	}
	b := books.FindByName(fields[0])
	if b == nil {
		return nil, "", false
	}

	chapter := 0
	verse := 0
	var err error
	if len(fields) > 1 {
		if chapter, err = strconv.Atoi(fields[1]); err != nil {
			return nil, "", false
		}
	}
	if len(fields) > 2 {
		if verse, err = strconv.Atoi(fields[2]); err != nil {
			return nil, "", false
		}
	}

	if chapter == 0 {
		chapter = 1
		if upper {
			chapter = b.Chapters
		}
	}
	if verse == 0 {
		verse = 1
		if upper {
			last, ok := versification.VerseCount(b.Code, chapter)
			if !ok {
				return nil, "", false
			}
			verse = last
		}
	}
	return b, fmt.Sprintf("%d:%d", chapter, verse), true
}
