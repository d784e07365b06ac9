package refparse

import (
	"errors"
	"testing"

	refErrors "github.com/FocuswithJustin/pericope/core/errors"
	"github.com/FocuswithJustin/pericope/core/pericope"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single verse", "GEN 1:1", "GEN 1:1"},
		{"verse range", "GEN 1:1-3", "GEN 1:1-3"},
		{"cross chapter", "GEN 1:30-2:2", "GEN 1:30-2:2"},
		{"comma separated singletons", "GEN 1:1,3,5", "GEN 1:1,1:3,1:5"},
		{"mixed segments", "GEN 1:1-3,5,7-9", "GEN 1:1-3,1:5,1:7-9"},
		{"book only defaults", "GEN", "GEN 1:1"},
		{"bare chapter", "GEN 3", "GEN 3:1"},
		{"bare chapter range", "GEN 1-2", "GEN 1:1-2"},
		{"context after cross chapter", "GEN 1:30-2:2,5", "GEN 1:30-2:2,2:5"},
		{"lowercase code", "gen 1:1", "GEN 1:1"},
		{"full name", "Genesis 1:1", "GEN 1:1"},
		{"numbered book", "1JN 1:9", "1JN 1:9"},
		{"fuzzy book name", "Mathew 5:3-12", "MAT 5:3-12"},
		{"extra whitespace", "  GEN   1:1  ", "GEN 1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseScenario(t *testing.T) {
	p, err := Parse("GEN 1:1-3")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.VerseCount(); got != 3 {
		t.Errorf("VerseCount = %d, want 3", got)
	}
	if got := p.Render(pericope.FormatFullName); got != "Genesis 1:1-3" {
		t.Errorf("full name = %q, want %q", got, "Genesis 1:1-3")
	}

	cross, err := Parse("GEN 1:30-2:2")
	if err != nil {
		t.Fatal(err)
	}
	if got := cross.VersesInChapter(1); got != 2 {
		t.Errorf("VersesInChapter(1) = %d, want 2", got)
	}
	if got := cross.VersesInChapter(2); got != 2 {
		t.Errorf("VersesInChapter(2) = %d, want 2", got)
	}
	first, ok := cross.FirstVerse()
	if !ok || first.String() != "GEN 1:30" {
		t.Errorf("FirstVerse = (%v, %v), want GEN 1:30", first, ok)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{"empty", "", func(err error) bool {
			var e *refErrors.ParseError
			return errors.As(err, &e)
		}},
		{"blank", "   ", func(err error) bool {
			var e *refErrors.ParseError
			return errors.As(err, &e)
		}},
		{"unknown book", "INVALID 1:1", func(err error) bool {
			var e *refErrors.InvalidBookError
			return errors.As(err, &e)
		}},
		{"chapter out of bounds", "GEN 99:1", func(err error) bool {
			var e *refErrors.InvalidChapterError
			return errors.As(err, &e) && e.BookCode == "GEN" && e.Chapter == 99
		}},
		{"verse out of bounds", "GEN 1:99", func(err error) bool {
			var e *refErrors.InvalidVerseError
			return errors.As(err, &e) && e.Verse == 99
		}},
		{"garbage range", "GEN 1:x", func(err error) bool {
			var e *refErrors.ParseError
			return errors.As(err, &e)
		}},
		{"inverted range", "GEN 2:5-1:1", func(err error) bool {
			var e *refErrors.ParseError
			return errors.As(err, &e)
		}},
		{"trailing comma", "GEN 1:1,", func(err error) bool {
			var e *refErrors.ParseError
			return errors.As(err, &e)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.input)
			}
			if !tt.check(err) {
				t.Errorf("Parse(%q) error = %v, wrong kind", tt.input, err)
			}
			if !refErrors.IsReferenceError(err) {
				t.Errorf("Parse(%q) error %v should belong to the taxonomy", tt.input, err)
			}
		})
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"drops invalid token",
			"See GEN 1:1 and INVALID 1:1",
			[]string{"GEN 1:1"},
		},
		{
			"multiple references",
			"Compare MAT 5:3-12 with LUK 6:20-23.",
			[]string{"MAT 5:3-12", "LUK 6:20-23"},
		},
		{
			"numbered book code",
			"Confession is covered in 1JN 1:9 among others.",
			[]string{"1JN 1:9"},
		},
		{
			"skips out-of-bounds",
			"Broken GEN 99:1 but fine GEN 1:1-3 here",
			[]string{"GEN 1:1-3"},
		},
		{
			"comma segments survive",
			"Readings: PSA 23:1,4-6 tonight",
			[]string{"PSA 23:1,23:4-6"},
		},
		{
			"trailing punctuation trimmed",
			"As in JHN 3:16, we read...",
			[]string{"JHN 3:16"},
		},
		{
			"nothing to find",
			"No references in this sentence at all.",
			nil,
		},
		{
			"empty input",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Scan(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i, p := range got {
				if p.String() != tt.want[i] {
					t.Errorf("hit %d = %q, want %q", i, p.String(), tt.want[i])
				}
			}
		})
	}
}

func TestScanContinuesAfterFailure(t *testing.T) {
	text := "XQZ 1:1 then GEN 2:3 then GEN 99:99 then EXO 3:1-5"
	got := Scan(text)
	want := []string{"GEN 2:3", "EXO 3:1-5"}
	if len(got) != len(want) {
		t.Fatalf("Scan = %v, want %v", got, want)
	}
	for i, p := range got {
		if p.String() != want[i] {
			t.Errorf("hit %d = %q, want %q", i, p.String(), want[i])
		}
	}
}
