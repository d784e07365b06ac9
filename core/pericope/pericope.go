// Package pericope provides book-scoped verse ranges and set algebra over
// them.
//
// A Pericope is one book plus an ordered list of Ranges. Ranges are kept in
// input order as constructed; they are not required to be sorted, merged,
// or disjoint. Operations that need a canonical form normalize internally
// and every operation returns a new value, so a Pericope never mutates
// after construction. The empty Pericope (zero ranges) is a valid state
// meaning "no verses"; all queries degrade to empty results and zero counts.
package pericope

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/pericope/core/books"
	refErrors "github.com/FocuswithJustin/pericope/core/errors"
	"github.com/FocuswithJustin/pericope/core/verse"
	"github.com/FocuswithJustin/pericope/core/versification"
)

// Range is one contiguous span between two verse coordinates of one book.
// Start is never after End under coordinate order. A Range may span chapters.
type Range struct {
	StartChapter int
	StartVerse   int
	EndChapter   int
	EndVerse     int
}

// Singleton reports whether the range covers exactly one verse position.
func (r Range) Singleton() bool {
	return r.StartChapter == r.EndChapter && r.StartVerse == r.EndVerse
}

// SingleVerse constructs a range covering one verse.
func SingleVerse(chapter, v int) Range {
	return Range{StartChapter: chapter, StartVerse: v, EndChapter: chapter, EndVerse: v}
}

// Pericope is a possibly discontinuous set of verse ranges within one book.
type Pericope struct {
	book   *books.Book
	ranges []Range
}

// New constructs a Pericope, validating every range endpoint against the
// versification table and the start-before-end invariant.
func New(book *books.Book, ranges ...Range) (*Pericope, error) {
	if book == nil {
		return nil, &refErrors.InvalidBookError{Token: ""}
	}
	for _, r := range ranges {
		if err := validateRange(book, r); err != nil {
			return nil, err
		}
	}
	return &Pericope{book: book, ranges: append([]Range(nil), ranges...)}, nil
}

// Empty returns the empty Pericope for a book.
func Empty(book *books.Book) *Pericope {
	return &Pericope{book: book}
}

func validateRange(book *books.Book, r Range) error {
	start, err := verse.New(book, r.StartChapter, r.StartVerse)
	if err != nil {
		return err
	}
	end, err := verse.New(book, r.EndChapter, r.EndVerse)
	if err != nil {
		return err
	}
	if start.After(end) {
		return &refErrors.ParseError{
			Message: fmt.Sprintf("range start %s is after end %s", start, end),
		}
	}
	return nil
}

// Book returns the book this pericope is scoped to.
func (p *Pericope) Book() *books.Book {
	return p.book
}

// Ranges returns a copy of the range list in construction order.
func (p *Pericope) Ranges() []Range {
	return append([]Range(nil), p.ranges...)
}

// IsEmpty reports whether the pericope covers no verses.
func (p *Pericope) IsEmpty() bool {
	return len(p.ranges) == 0
}

// Clear returns the empty pericope for the same book.
func (p *Pericope) Clear() *Pericope {
	return Empty(p.book)
}

// start and end build coordinates for a validated range without re-checking
// bounds; every Range held by a Pericope passed validateRange.
func (p *Pericope) start(r Range) verse.Coordinate {
	return verse.Coordinate{Book: p.book, Chapter: r.StartChapter, Verse: r.StartVerse}
}

func (p *Pericope) end(r Range) verse.Coordinate {
	return verse.Coordinate{Book: p.book, Chapter: r.EndChapter, Verse: r.EndVerse}
}

// FirstVerse returns the start of the first range in construction order.
func (p *Pericope) FirstVerse() (verse.Coordinate, bool) {
	if p.IsEmpty() {
		return verse.Coordinate{}, false
	}
	return p.start(p.ranges[0]), true
}

// LastVerse returns the end of the last range in construction order.
func (p *Pericope) LastVerse() (verse.Coordinate, bool) {
	if p.IsEmpty() {
		return verse.Coordinate{}, false
	}
	return p.end(p.ranges[len(p.ranges)-1]), true
}

// Verses materializes every covered coordinate, range by range in
// construction order. Coordinates within a range ascend; across ranges the
// order follows the range list, not global order.
func (p *Pericope) Verses() []verse.Coordinate {
	var out []verse.Coordinate
	for _, r := range p.ranges {
		c := p.start(r)
		end := p.end(r)
		for {
			out = append(out, c)
			if c.Equal(end) {
				break
			}
			next, ok := c.Successor()
			if !ok {
				break
			}
			c = next
		}
	}
	return out
}

// VerseCount returns the number of distinct verses covered.
func (p *Pericope) VerseCount() int {
	n := 0
	for _, r := range p.Normalize().ranges {
		n += p.rangeLength(r)
	}
	return n
}

// rangeLength counts the verses a single range covers, consulting the
// versification table for chapter widths.
func (p *Pericope) rangeLength(r Range) int {
	if r.StartChapter == r.EndChapter {
		return r.EndVerse - r.StartVerse + 1
	}
	n := 0
	for ch := r.StartChapter; ch <= r.EndChapter; ch++ {
		count, ok := versification.VerseCount(p.book.Code, ch)
		if !ok {
			continue
		}
		lo, hi := 1, count
		if ch == r.StartChapter {
			lo = r.StartVerse
		}
		if ch == r.EndChapter {
			hi = r.EndVerse
		}
		n += hi - lo + 1
	}
	return n
}

// Format selects a rendering style for String output.
type Format int

// Rendering styles.
const (
	// FormatCanonical renders "GEN 1:1-3".
	FormatCanonical Format = iota
	// FormatAbbreviated renders the same code-prefixed form as canonical.
	FormatAbbreviated
	// FormatFullName renders "Genesis 1:1-3".
	FormatFullName
)

// String renders the pericope canonically; an empty pericope renders "".
func (p *Pericope) String() string {
	return p.Render(FormatCanonical)
}

// Render renders the pericope in the requested format.
// A singleton renders "C:V", a same-chapter range "C:V1-V2", a
// cross-chapter range "C1:V1-C2:V2"; ranges join with ",".
func (p *Pericope) Render(f Format) string {
	if p.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	switch f {
	case FormatFullName:
		sb.WriteString(p.book.Name)
	default:
		sb.WriteString(p.book.Code)
	}
	sb.WriteString(" ")
	for i, r := range p.ranges {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(formatRange(r))
	}
	return sb.String()
}

func formatRange(r Range) string {
	switch {
	case r.Singleton():
		return fmt.Sprintf("%d:%d", r.StartChapter, r.StartVerse)
	case r.StartChapter == r.EndChapter:
		return fmt.Sprintf("%d:%d-%d", r.StartChapter, r.StartVerse, r.EndVerse)
	default:
		return fmt.Sprintf("%d:%d-%d:%d", r.StartChapter, r.StartVerse, r.EndChapter, r.EndVerse)
	}
}
