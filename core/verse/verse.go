// Package verse provides the validated (book, chapter, verse) coordinate.
//
// A Coordinate is constructible only when its chapter and verse fall within
// the versification bounds of its book; construction is the validation
// point. Coordinates order primarily by book ordinal, then chapter, then
// verse, and encode to a single sortable integer.
package verse

import (
	"fmt"

	"github.com/FocuswithJustin/pericope/core/books"
	refErrors "github.com/FocuswithJustin/pericope/core/errors"
	"github.com/FocuswithJustin/pericope/core/versification"
)

// Coordinate is one ordered verse position within a book.
type Coordinate struct {
	Book    *books.Book
	Chapter int
	Verse   int
}

// New constructs a validated coordinate for an already-resolved book.
func New(book *books.Book, chapter, verse int) (Coordinate, error) {
	if book == nil {
		return Coordinate{}, &refErrors.InvalidBookError{Token: ""}
	}
	if chapter <= 0 || !versification.ValidChapter(book.Code, chapter) {
		return Coordinate{}, &refErrors.InvalidChapterError{BookCode: book.Code, Chapter: chapter}
	}
	if verse <= 0 || !versification.ValidVerse(book.Code, chapter, verse) {
		return Coordinate{}, &refErrors.InvalidVerseError{BookCode: book.Code, Chapter: chapter, Verse: verse}
	}
	return Coordinate{Book: book, Chapter: chapter, Verse: verse}, nil
}

// Resolve constructs a coordinate from a bare book code or name,
// resolving it through the registry first.
func Resolve(book string, chapter, verse int) (Coordinate, error) {
	b := books.FindByName(book)
	if b == nil {
		return Coordinate{}, &refErrors.InvalidBookError{Token: book}
	}
	return New(b, chapter, verse)
}

// IsValid re-probes the coordinate against the versification table.
// A freshly constructed coordinate is always valid; the probe exists for
// zero values and coordinates assembled by hand.
func (c Coordinate) IsValid() bool {
	return c.Book != nil && versification.ValidVerse(c.Book.Code, c.Chapter, c.Verse)
}

// Compare orders coordinates by book ordinal, then chapter, then verse.
func (c Coordinate) Compare(other Coordinate) int {
	if n := c.Book.Compare(other.Book); n != 0 {
		return n
	}
	if c.Chapter != other.Chapter {
		if c.Chapter < other.Chapter {
			return -1
		}
		return 1
	}
	if c.Verse != other.Verse {
		if c.Verse < other.Verse {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether c is strictly before other.
func (c Coordinate) Before(other Coordinate) bool { return c.Compare(other) < 0 }

// After reports whether c is strictly after other.
func (c Coordinate) After(other Coordinate) bool { return c.Compare(other) > 0 }

// Equal reports whether both coordinates name the same verse.
func (c Coordinate) Equal(other Coordinate) bool { return c.Compare(other) == 0 }

// Successor returns the next verse in the book. Within the chapter it is
// verse+1; at a chapter's end it moves to verse 1 of the next chapter; at
// the book's end it returns (zero, false). End of book is a terminal value,
// not an error.
func (c Coordinate) Successor() (Coordinate, bool) {
	count, ok := versification.VerseCount(c.Book.Code, c.Chapter)
	if !ok {
		return Coordinate{}, false
	}
	if c.Verse < count {
		return Coordinate{Book: c.Book, Chapter: c.Chapter, Verse: c.Verse + 1}, true
	}
	if versification.ValidChapter(c.Book.Code, c.Chapter+1) {
		return Coordinate{Book: c.Book, Chapter: c.Chapter + 1, Verse: 1}, true
	}
	return Coordinate{}, false
}

// Predecessor returns the previous verse in the book, or (zero, false) at
// the book's first verse.
func (c Coordinate) Predecessor() (Coordinate, bool) {
	if c.Verse > 1 {
		return Coordinate{Book: c.Book, Chapter: c.Chapter, Verse: c.Verse - 1}, true
	}
	if c.Chapter > 1 {
		count, ok := versification.VerseCount(c.Book.Code, c.Chapter-1)
		if !ok {
			return Coordinate{}, false
		}
		return Coordinate{Book: c.Book, Chapter: c.Chapter - 1, Verse: count}, true
	}
	return Coordinate{}, false
}

// Encode packs the coordinate into one ordered integer:
// book number * 1_000_000 + chapter * 1_000 + verse.
func (c Coordinate) Encode() int {
	return c.Book.Number*1_000_000 + c.Chapter*1_000 + c.Verse
}

// Decode unpacks an encoded coordinate, validating it on the way out.
func Decode(encoded int) (Coordinate, error) {
	number := encoded / 1_000_000
	chapter := (encoded / 1_000) % 1_000
	v := encoded % 1_000
	b := books.FindByNumber(number)
	if b == nil {
		return Coordinate{}, &refErrors.InvalidBookError{Token: fmt.Sprintf("%d", number)}
	}
	return New(b, chapter, v)
}

// String renders the coordinate as "GEN 1:1".
func (c Coordinate) String() string {
	if c.Book == nil {
		return ""
	}
	return fmt.Sprintf("%s %d:%d", c.Book.Code, c.Chapter, c.Verse)
}
