// Package books provides the canonical book registry and name resolver.
//
// The registry is process-wide read-only state built once at package init:
// 66 books in canonical order (OT then NT), each carrying its code, ordinal,
// display name, testament tag, chapter count, and alias set. Nothing mutates
// it after construction, so it is safe to share without locking.
package books

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/pericope/core/versification"
)

// Testament tags a book as Old or New Testament.
type Testament string

// Testament constants.
const (
	TestamentOld Testament = "old"
	TestamentNew Testament = "new"
)

// Book describes one canonical book. Values are immutable after init.
type Book struct {
	Code      string    // canonical 3-char code, unique
	Number    int       // 1..66, defines cross-book ordering
	Name      string    // display name
	Testament Testament // old or new
	Chapters  int       // chapter count, filled from the versification table
	Aliases   []string  // case-folded names and abbreviations
}

// Equal reports whether two books are the same canonical book.
// Identity is by code only.
func (b *Book) Equal(other *Book) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Code == other.Code
}

// Compare orders books by ordinal number.
func (b *Book) Compare(other *Book) int {
	switch {
	case b.Number < other.Number:
		return -1
	case b.Number > other.Number:
		return 1
	default:
		return 0
	}
}

// registry holds the canonical books in canonical order. Chapter counts are
// filled from the versification table at init so the two never diverge.
var registry = []Book{
	{Code: "GEN", Number: 1, Name: "Genesis", Testament: TestamentOld, Aliases: []string{"genesis", "gen"}},
	{Code: "EXO", Number: 2, Name: "Exodus", Testament: TestamentOld, Aliases: []string{"exodus", "exod", "exo", "ex"}},
	{Code: "LEV", Number: 3, Name: "Leviticus", Testament: TestamentOld, Aliases: []string{"leviticus", "lev"}},
	{Code: "NUM", Number: 4, Name: "Numbers", Testament: TestamentOld, Aliases: []string{"numbers", "num"}},
	{Code: "DEU", Number: 5, Name: "Deuteronomy", Testament: TestamentOld, Aliases: []string{"deuteronomy", "deut", "deu"}},
	{Code: "JOS", Number: 6, Name: "Joshua", Testament: TestamentOld, Aliases: []string{"joshua", "josh", "jos"}},
	{Code: "JDG", Number: 7, Name: "Judges", Testament: TestamentOld, Aliases: []string{"judges", "judg", "jdg"}},
	{Code: "RUT", Number: 8, Name: "Ruth", Testament: TestamentOld, Aliases: []string{"ruth", "rut"}},
	{Code: "1SA", Number: 9, Name: "1 Samuel", Testament: TestamentOld, Aliases: []string{"1 samuel", "1samuel", "1 sam", "1sam"}},
	{Code: "2SA", Number: 10, Name: "2 Samuel", Testament: TestamentOld, Aliases: []string{"2 samuel", "2samuel", "2 sam", "2sam"}},
	{Code: "1KI", Number: 11, Name: "1 Kings", Testament: TestamentOld, Aliases: []string{"1 kings", "1kings", "1 kgs", "1kgs"}},
	{Code: "2KI", Number: 12, Name: "2 Kings", Testament: TestamentOld, Aliases: []string{"2 kings", "2kings", "2 kgs", "2kgs"}},
	{Code: "1CH", Number: 13, Name: "1 Chronicles", Testament: TestamentOld, Aliases: []string{"1 chronicles", "1chronicles", "1 chr", "1chr"}},
	{Code: "2CH", Number: 14, Name: "2 Chronicles", Testament: TestamentOld, Aliases: []string{"2 chronicles", "2chronicles", "2 chr", "2chr"}},
	{Code: "EZR", Number: 15, Name: "Ezra", Testament: TestamentOld, Aliases: []string{"ezra", "ezr"}},
	{Code: "NEH", Number: 16, Name: "Nehemiah", Testament: TestamentOld, Aliases: []string{"nehemiah", "neh"}},
	{Code: "EST", Number: 17, Name: "Esther", Testament: TestamentOld, Aliases: []string{"esther", "esth", "est"}},
	{Code: "JOB", Number: 18, Name: "Job", Testament: TestamentOld, Aliases: []string{"job"}},
	{Code: "PSA", Number: 19, Name: "Psalms", Testament: TestamentOld, Aliases: []string{"psalms", "psalm", "psa", "ps"}},
	{Code: "PRO", Number: 20, Name: "Proverbs", Testament: TestamentOld, Aliases: []string{"proverbs", "prov", "pro"}},
	{Code: "ECC", Number: 21, Name: "Ecclesiastes", Testament: TestamentOld, Aliases: []string{"ecclesiastes", "eccl", "ecc"}},
	{Code: "SNG", Number: 22, Name: "Song of Solomon", Testament: TestamentOld, Aliases: []string{"song of solomon", "song of songs", "song", "sos", "canticles"}},
	{Code: "ISA", Number: 23, Name: "Isaiah", Testament: TestamentOld, Aliases: []string{"isaiah", "isa"}},
	{Code: "JER", Number: 24, Name: "Jeremiah", Testament: TestamentOld, Aliases: []string{"jeremiah", "jer"}},
	{Code: "LAM", Number: 25, Name: "Lamentations", Testament: TestamentOld, Aliases: []string{"lamentations", "lam"}},
	{Code: "EZK", Number: 26, Name: "Ezekiel", Testament: TestamentOld, Aliases: []string{"ezekiel", "ezek", "eze"}},
	{Code: "DAN", Number: 27, Name: "Daniel", Testament: TestamentOld, Aliases: []string{"daniel", "dan"}},
	{Code: "HOS", Number: 28, Name: "Hosea", Testament: TestamentOld, Aliases: []string{"hosea", "hos"}},
	{Code: "JOL", Number: 29, Name: "Joel", Testament: TestamentOld, Aliases: []string{"joel"}},
	{Code: "AMO", Number: 30, Name: "Amos", Testament: TestamentOld, Aliases: []string{"amos"}},
	{Code: "OBA", Number: 31, Name: "Obadiah", Testament: TestamentOld, Aliases: []string{"obadiah", "obad", "oba"}},
	{Code: "JON", Number: 32, Name: "Jonah", Testament: TestamentOld, Aliases: []string{"jonah", "jon"}},
	{Code: "MIC", Number: 33, Name: "Micah", Testament: TestamentOld, Aliases: []string{"micah", "mic"}},
	{Code: "NAM", Number: 34, Name: "Nahum", Testament: TestamentOld, Aliases: []string{"nahum", "nah"}},
	{Code: "HAB", Number: 35, Name: "Habakkuk", Testament: TestamentOld, Aliases: []string{"habakkuk", "hab"}},
	{Code: "ZEP", Number: 36, Name: "Zephaniah", Testament: TestamentOld, Aliases: []string{"zephaniah", "zeph", "zep"}},
	{Code: "HAG", Number: 37, Name: "Haggai", Testament: TestamentOld, Aliases: []string{"haggai", "hag"}},
	{Code: "ZEC", Number: 38, Name: "Zechariah", Testament: TestamentOld, Aliases: []string{"zechariah", "zech", "zec"}},
	{Code: "MAL", Number: 39, Name: "Malachi", Testament: TestamentOld, Aliases: []string{"malachi", "mal"}},
	{Code: "MAT", Number: 40, Name: "Matthew", Testament: TestamentNew, Aliases: []string{"matthew", "matt", "mt"}},
	{Code: "MRK", Number: 41, Name: "Mark", Testament: TestamentNew, Aliases: []string{"mark", "mk"}},
	{Code: "LUK", Number: 42, Name: "Luke", Testament: TestamentNew, Aliases: []string{"luke", "lk"}},
	{Code: "JHN", Number: 43, Name: "John", Testament: TestamentNew, Aliases: []string{"john", "joh", "jn"}},
	{Code: "ACT", Number: 44, Name: "Acts", Testament: TestamentNew, Aliases: []string{"acts", "act"}},
	{Code: "ROM", Number: 45, Name: "Romans", Testament: TestamentNew, Aliases: []string{"romans", "rom"}},
	{Code: "1CO", Number: 46, Name: "1 Corinthians", Testament: TestamentNew, Aliases: []string{"1 corinthians", "1corinthians", "1 cor", "1cor"}},
	{Code: "2CO", Number: 47, Name: "2 Corinthians", Testament: TestamentNew, Aliases: []string{"2 corinthians", "2corinthians", "2 cor", "2cor"}},
	{Code: "GAL", Number: 48, Name: "Galatians", Testament: TestamentNew, Aliases: []string{"galatians", "gal"}},
	{Code: "EPH", Number: 49, Name: "Ephesians", Testament: TestamentNew, Aliases: []string{"ephesians", "eph"}},
	{Code: "PHP", Number: 50, Name: "Philippians", Testament: TestamentNew, Aliases: []string{"philippians", "phil"}},
	{Code: "COL", Number: 51, Name: "Colossians", Testament: TestamentNew, Aliases: []string{"colossians", "col"}},
	{Code: "1TH", Number: 52, Name: "1 Thessalonians", Testament: TestamentNew, Aliases: []string{"1 thessalonians", "1thessalonians", "1 thess", "1thess"}},
	{Code: "2TH", Number: 53, Name: "2 Thessalonians", Testament: TestamentNew, Aliases: []string{"2 thessalonians", "2thessalonians", "2 thess", "2thess"}},
	{Code: "1TI", Number: 54, Name: "1 Timothy", Testament: TestamentNew, Aliases: []string{"1 timothy", "1timothy", "1 tim", "1tim"}},
	{Code: "2TI", Number: 55, Name: "2 Timothy", Testament: TestamentNew, Aliases: []string{"2 timothy", "2timothy", "2 tim", "2tim"}},
	{Code: "TIT", Number: 56, Name: "Titus", Testament: TestamentNew, Aliases: []string{"titus"}},
	{Code: "PHM", Number: 57, Name: "Philemon", Testament: TestamentNew, Aliases: []string{"philemon", "phlm"}},
	{Code: "HEB", Number: 58, Name: "Hebrews", Testament: TestamentNew, Aliases: []string{"hebrews", "heb"}},
	{Code: "JAS", Number: 59, Name: "James", Testament: TestamentNew, Aliases: []string{"james", "jas"}},
	{Code: "1PE", Number: 60, Name: "1 Peter", Testament: TestamentNew, Aliases: []string{"1 peter", "1peter", "1 pet", "1pet"}},
	{Code: "2PE", Number: 61, Name: "2 Peter", Testament: TestamentNew, Aliases: []string{"2 peter", "2peter", "2 pet", "2pet"}},
	{Code: "1JN", Number: 62, Name: "1 John", Testament: TestamentNew, Aliases: []string{"1 john", "1john", "1 jn"}},
	{Code: "2JN", Number: 63, Name: "2 John", Testament: TestamentNew, Aliases: []string{"2 john", "2john", "2 jn"}},
	{Code: "3JN", Number: 64, Name: "3 John", Testament: TestamentNew, Aliases: []string{"3 john", "3john", "3 jn"}},
	{Code: "JUD", Number: 65, Name: "Jude", Testament: TestamentNew, Aliases: []string{"jude"}},
	{Code: "REV", Number: 66, Name: "Revelation", Testament: TestamentNew, Aliases: []string{"revelation", "rev"}},
}

// aliasEntry pins the fuzzy-match iteration order: registry order, then the
// book's alias order. The first smallest edit distance wins, so resolution
// is reproducible across runs.
type aliasEntry struct {
	alias string
	book  *Book
}

var (
	byCode     map[string]*Book
	byNumber   map[int]*Book
	aliasIndex map[string]*Book
	aliasOrder []aliasEntry
)

func init() {
	byCode = make(map[string]*Book, len(registry))
	byNumber = make(map[int]*Book, len(registry))
	aliasIndex = make(map[string]*Book)

	for i := range registry {
		b := &registry[i]
		if b.Chapters == 0 {
			b.Chapters, _ = versificationChapterCount(b.Code)
		}
		byCode[b.Code] = b
		byNumber[b.Number] = b

		// The code and ordinal number are aliases of the book too.
		names := make([]string, 0, len(b.Aliases)+2)
		names = append(names, strings.ToLower(b.Code), strconv.Itoa(b.Number))
		names = append(names, b.Aliases...)
		for _, alias := range names {
			if _, dup := aliasIndex[alias]; !dup {
				aliasIndex[alias] = b
				aliasOrder = append(aliasOrder, aliasEntry{alias: alias, book: b})
			}
		}
	}
}

func versificationChapterCount(code string) (int, bool) {
	table, ok := versification.Lookup(versification.SchemeEnglish)
	if !ok {
		return 0, false
	}
	return table.ChapterCount(code)
}

// AllBooks returns the 66 canonical books in registry order.
func AllBooks() []*Book {
	out := make([]*Book, len(registry))
	for i := range registry {
		out[i] = &registry[i]
	}
	return out
}

// TestamentBooks returns the books of one testament in registry order.
// Unknown testament tags return an empty slice.
func TestamentBooks(t Testament) []*Book {
	var out []*Book
	for i := range registry {
		if registry[i].Testament == t {
			out = append(out, &registry[i])
		}
	}
	return out
}
