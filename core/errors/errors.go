// Package errors provides the reference error taxonomy for the pericope codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidReference is the root of the reference error taxonomy.
	// Every typed error below unwraps to it, so callers that want to
	// skip-and-continue (the scanner) can filter with a single errors.Is.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrNotFound indicates a lookup against the registry or table missed
	ErrNotFound = errors.New("not found")
)

// ParseError represents malformed or empty reference text
type ParseError struct {
	Input   string // Text that failed to parse (may be empty)
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("cannot parse reference %q: %s", e.Input, e.Message)
	}
	return fmt.Sprintf("cannot parse reference: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidReference
}

// InvalidBookError represents a token that resolves to no canonical book
type InvalidBookError struct {
	Token string // Book token that failed to resolve
}

func (e *InvalidBookError) Error() string {
	return fmt.Sprintf("unknown book: %q", e.Token)
}

func (e *InvalidBookError) Unwrap() error {
	return ErrInvalidReference
}

// InvalidChapterError represents a chapter outside versification bounds
type InvalidChapterError struct {
	BookCode string // Canonical code of the resolved book
	Chapter  int    // Chapter that failed validation
}

func (e *InvalidChapterError) Error() string {
	return fmt.Sprintf("invalid chapter %d in %s", e.Chapter, e.BookCode)
}

func (e *InvalidChapterError) Unwrap() error {
	return ErrInvalidReference
}

// InvalidVerseError represents a verse outside the chapter's bound
type InvalidVerseError struct {
	BookCode string // Canonical code of the resolved book
	Chapter  int    // Chapter containing the verse
	Verse    int    // Verse that failed validation
}

func (e *InvalidVerseError) Error() string {
	return fmt.Sprintf("invalid verse %d in %s %d", e.Verse, e.BookCode, e.Chapter)
}

func (e *InvalidVerseError) Unwrap() error {
	return ErrInvalidReference
}

// IsReferenceError reports whether err belongs to the reference taxonomy.
func IsReferenceError(err error) bool {
	return errors.Is(err, ErrInvalidReference)
}
