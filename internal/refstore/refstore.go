// Package refstore persists scanned references in a SQLite database.
//
// References are grouped into scan sessions. Each session records its
// source label and the fingerprint of the versification table it was
// indexed under, so a later reader can tell whether the bounds have
// changed since indexing. Range endpoints are stored as the sortable
// integer encoding (book*1_000_000 + chapter*1_000 + verse).
package refstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/pericope/core/pericope"
	"github.com/FocuswithJustin/pericope/core/verse"
	"github.com/FocuswithJustin/pericope/core/versification"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id          TEXT PRIMARY KEY,
	source      TEXT NOT NULL,
	scheme_hash TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS refs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id    TEXT NOT NULL REFERENCES sessions(id),
	reference     TEXT NOT NULL,
	book_code     TEXT NOT NULL,
	start_encoded INTEGER NOT NULL,
	end_encoded   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_refs_session ON refs(session_id, start_encoded);
CREATE INDEX IF NOT EXISTS idx_refs_book ON refs(book_code, start_encoded);
`

// Store is a reference index backed by SQLite.
type Store struct {
	db *sql.DB
}

// Session identifies one scan run.
type Session struct {
	ID         string
	Source     string
	SchemeHash string
	CreatedAt  time.Time
}

// Record is one stored contiguous range.
type Record struct {
	SessionID    string
	Reference    string // canonical rendering of the whole pericope
	BookCode     string
	StartEncoded int
	EndEncoded   int
}

// Open opens (creating if needed) a reference store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening reference store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing reference store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DriverType reports which SQLite driver this binary was built with.
func DriverType() string {
	return driverType
}

// BeginSession creates a new scan session for the given source label.
func (s *Store) BeginSession(source string) (*Session, error) {
	table, ok := versification.Lookup(versification.SchemeEnglish)
	if !ok {
		return nil, fmt.Errorf("default versification scheme missing")
	}
	session := &Session{
		ID:         uuid.NewString(),
		Source:     source,
		SchemeHash: table.Fingerprint(),
		CreatedAt:  time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, source, scheme_hash, created_at) VALUES (?, ?, ?, ?)`,
		session.ID, session.Source, session.SchemeHash, session.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}

// AddPericope stores the pericope's normalized ranges under the session.
// Each contiguous range becomes one row so book-order queries stay cheap.
func (s *Store) AddPericope(sessionID string, p *pericope.Pericope) error {
	if p == nil || p.IsEmpty() {
		return nil
	}
	reference := p.String()
	book := p.Book()
	for _, r := range p.ContinuousRanges() {
		start := verse.Coordinate{Book: book, Chapter: r.StartChapter, Verse: r.StartVerse}
		end := verse.Coordinate{Book: book, Chapter: r.EndChapter, Verse: r.EndVerse}
		_, err := s.db.Exec(
			`INSERT INTO refs (session_id, reference, book_code, start_encoded, end_encoded)
			 VALUES (?, ?, ?, ?, ?)`,
			sessionID, reference, book.Code, start.Encode(), end.Encode(),
		)
		if err != nil {
			return fmt.Errorf("storing reference %q: %w", reference, err)
		}
	}
	return nil
}

// BySession returns the session's records in verse order.
func (s *Store) BySession(sessionID string) ([]Record, error) {
	return s.query(
		`SELECT session_id, reference, book_code, start_encoded, end_encoded
		 FROM refs WHERE session_id = ? ORDER BY start_encoded`, sessionID)
}

// InBook returns every stored record for one book in verse order.
func (s *Store) InBook(bookCode string) ([]Record, error) {
	return s.query(
		`SELECT session_id, reference, book_code, start_encoded, end_encoded
		 FROM refs WHERE book_code = ? ORDER BY start_encoded`, bookCode)
}

// Sessions returns every recorded session, newest first.
func (s *Store) Sessions() ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT id, source, scheme_hash, created_at FROM sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var created string
		if err := rows.Scan(&sess.ID, &sess.Source, &sess.SchemeHash, &created); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		sess.CreatedAt, _ = time.Parse(time.RFC3339, created)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func (s *Store) query(q string, arg any) ([]Record, error) {
	rows, err := s.db.Query(q, arg)
	if err != nil {
		return nil, fmt.Errorf("querying references: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.SessionID, &r.Reference, &r.BookCode, &r.StartEncoded, &r.EndEncoded); err != nil {
			return nil, fmt.Errorf("scanning reference row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
