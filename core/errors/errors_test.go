package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ParseError
		wantMsg string
	}{
		{
			name:    "with input",
			err:     &ParseError{Input: "GEN 1:x", Message: "bad segment"},
			wantMsg: `cannot parse reference "GEN 1:x": bad segment`,
		},
		{
			name:    "without input",
			err:     &ParseError{Message: "empty reference"},
			wantMsg: "cannot parse reference: empty reference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrInvalidReference) {
				t.Error("ParseError should unwrap to ErrInvalidReference")
			}
		})
	}
}

func TestTaxonomyRoot(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"parse", &ParseError{Message: "blank"}},
		{"book", &InvalidBookError{Token: "NOPE"}},
		{"chapter", &InvalidChapterError{BookCode: "GEN", Chapter: 51}},
		{"verse", &InvalidVerseError{BookCode: "GEN", Chapter: 1, Verse: 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsReferenceError(tt.err) {
				t.Errorf("IsReferenceError(%v) = false, want true", tt.err)
			}
			if !IsReferenceError(fmt.Errorf("wrapped: %w", tt.err)) {
				t.Error("wrapped taxonomy error should still be recognized")
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	if got, want := (&InvalidBookError{Token: "Qux"}).Error(), `unknown book: "Qux"`; got != want {
		t.Errorf("InvalidBookError = %q, want %q", got, want)
	}
	if got, want := (&InvalidChapterError{BookCode: "GEN", Chapter: 99}).Error(), "invalid chapter 99 in GEN"; got != want {
		t.Errorf("InvalidChapterError = %q, want %q", got, want)
	}
	if got, want := (&InvalidVerseError{BookCode: "PSA", Chapter: 23, Verse: 7}).Error(), "invalid verse 7 in PSA 23"; got != want {
		t.Errorf("InvalidVerseError = %q, want %q", got, want)
	}
}

func TestIsReferenceErrorNonTaxonomy(t *testing.T) {
	if IsReferenceError(errors.New("disk full")) {
		t.Error("unrelated error should not be classified as a reference error")
	}
	if IsReferenceError(nil) {
		t.Error("nil should not be classified as a reference error")
	}
}
