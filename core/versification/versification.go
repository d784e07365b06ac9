// Package versification provides per-book chapter and verse bounds.
//
// A versification scheme defines how many verses each chapter of each book
// holds. Only the "english" (KJV) scheme is populated; every other scheme
// identifier fails closed through Lookup, which is the seam for adding
// alternate schemes later.
//
// All queries are pure functions over a static table built at package init.
// Unknown book codes, non-positive chapters, chapters past the book's end,
// and unsupported schemes uniformly report "not found" rather than raising,
// so upstream callers can use plain guard checks.
package versification

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Scheme identifies a versification scheme.
type Scheme string

// SchemeEnglish is the KJV-derived scheme used by English translations.
const SchemeEnglish Scheme = "english"

// ChapterInfo describes one chapter's bounds within a scheme.
type ChapterInfo struct {
	BookCode   string
	Chapter    int
	VerseCount int
}

// Table holds the per-chapter verse counts for every book of one scheme.
type Table struct {
	scheme Scheme
	order  []string         // book codes in canonical order
	counts map[string][]int // code -> verse count per chapter, index 0 = chapter 1
}

// Lookup returns the table for the given scheme.
// Unsupported schemes return (nil, false); they are valid input, not an error.
func Lookup(scheme Scheme) (*Table, bool) {
	if scheme != SchemeEnglish {
		return nil, false
	}
	return englishTable, true
}

// VerseCount returns the number of verses in the given chapter.
func (t *Table) VerseCount(bookCode string, chapter int) (int, bool) {
	chapters, ok := t.counts[bookCode]
	if !ok || chapter <= 0 || chapter > len(chapters) {
		return 0, false
	}
	return chapters[chapter-1], true
}

// TotalVerses returns the sum of verse counts across all chapters of the book.
func (t *Table) TotalVerses(bookCode string) (int, bool) {
	chapters, ok := t.counts[bookCode]
	if !ok {
		return 0, false
	}
	total := 0
	for _, n := range chapters {
		total += n
	}
	return total, true
}

// ChapterCount returns the number of chapters in the book.
func (t *Table) ChapterCount(bookCode string) (int, bool) {
	chapters, ok := t.counts[bookCode]
	if !ok {
		return 0, false
	}
	return len(chapters), true
}

// ValidChapter reports whether the chapter exists in the book.
func (t *Table) ValidChapter(bookCode string, chapter int) bool {
	_, ok := t.VerseCount(bookCode, chapter)
	return ok
}

// ValidVerse reports whether the verse exists in the chapter.
func (t *Table) ValidVerse(bookCode string, chapter, verse int) bool {
	count, ok := t.VerseCount(bookCode, chapter)
	return ok && verse >= 1 && verse <= count
}

// ChapterInfo returns the bounds record for one chapter.
func (t *Table) ChapterInfo(bookCode string, chapter int) (ChapterInfo, bool) {
	count, ok := t.VerseCount(bookCode, chapter)
	if !ok {
		return ChapterInfo{}, false
	}
	return ChapterInfo{BookCode: bookCode, Chapter: chapter, VerseCount: count}, true
}

// BookChapters returns the ordered chapter records for the book.
// Unknown books return nil.
func (t *Table) BookChapters(bookCode string) []ChapterInfo {
	chapters, ok := t.counts[bookCode]
	if !ok {
		return nil
	}
	infos := make([]ChapterInfo, len(chapters))
	for i, count := range chapters {
		infos[i] = ChapterInfo{BookCode: bookCode, Chapter: i + 1, VerseCount: count}
	}
	return infos
}

// Scheme returns the scheme this table belongs to.
func (t *Table) Scheme() Scheme {
	return t.scheme
}

// Fingerprint returns the BLAKE3 hash of the table's canonical serialization.
// Stores record it so a reindex can detect a changed table.
func (t *Table) Fingerprint() string {
	h := blake3.New()
	var buf [4]byte
	h.Write([]byte(t.scheme))
	for _, code := range t.order {
		h.Write([]byte(code))
		for _, count := range t.counts[code] {
			binary.BigEndian.PutUint32(buf[:], uint32(count))
			h.Write(buf[:])
		}
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}

// Package-level queries bound to the default scheme. The trailing scheme
// argument is optional; anything other than exactly one supported scheme
// fails closed.

func tableFor(scheme []Scheme) (*Table, bool) {
	if len(scheme) == 0 {
		return englishTable, true
	}
	if len(scheme) > 1 {
		return nil, false
	}
	return Lookup(scheme[0])
}

// VerseCount returns the verse count for the chapter under the given scheme.
func VerseCount(bookCode string, chapter int, scheme ...Scheme) (int, bool) {
	t, ok := tableFor(scheme)
	if !ok {
		return 0, false
	}
	return t.VerseCount(bookCode, chapter)
}

// TotalVerses returns the book's verse total under the given scheme.
func TotalVerses(bookCode string, scheme ...Scheme) (int, bool) {
	t, ok := tableFor(scheme)
	if !ok {
		return 0, false
	}
	return t.TotalVerses(bookCode)
}

// ValidChapter reports chapter validity under the given scheme.
func ValidChapter(bookCode string, chapter int, scheme ...Scheme) bool {
	t, ok := tableFor(scheme)
	return ok && t.ValidChapter(bookCode, chapter)
}

// ValidVerse reports verse validity under the given scheme.
func ValidVerse(bookCode string, chapter, verse int, scheme ...Scheme) bool {
	t, ok := tableFor(scheme)
	return ok && t.ValidVerse(bookCode, chapter, verse)
}

// GetChapterInfo returns one chapter's bounds under the default scheme.
func GetChapterInfo(bookCode string, chapter int) (ChapterInfo, bool) {
	return englishTable.ChapterInfo(bookCode, chapter)
}

// BookChapters returns the ordered chapter records under the default scheme.
func BookChapters(bookCode string) []ChapterInfo {
	return englishTable.BookChapters(bookCode)
}
